package handlers

import (
	"errors"
	"net/http"

	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/domain"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{domain.ErrTaskNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrProjectNotFound, apierrors.MsgProjectNotFound},
	{domain.ErrRecurrenceNotFound, apierrors.MsgRecurrenceNotFound},
}

// respondError maps a service error onto a translated API error. failMsg is
// used for unexpected errors, invalidMsg for rejected payloads.
func respondError(c *gin.Context, err error, failMsg, invalidMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)
	_ = c.Error(err)

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, nf.msg, lang))
			return
		}
	}

	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))

	switch {
	case errors.Is(err, domain.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, invalidMsg, lang))
	case errors.Is(err, domain.ErrMalformedResponse):
		zap.L().Warn("malformed downstream response", fields...)
		c.JSON(
			http.StatusBadGateway,
			apierrors.CreateCategorizedError(http.StatusBadGateway, apierrors.CategoryMalformedUpstream, apierrors.MsgMalformedUpstream, lang),
		)
	case errors.Is(err, domain.ErrDependencyUnavailable):
		zap.L().Warn("downstream dependency unavailable", fields...)
		c.JSON(
			http.StatusBadGateway,
			apierrors.CreateCategorizedError(http.StatusBadGateway, apierrors.CategoryDependencyUnavailable, apierrors.MsgDependencyUnavailable, lang),
		)
	default:
		zap.L().Error(failMsg, fields...)
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, failMsg, lang))
	}
}

func badRequest(c *gin.Context, msgKey string) {
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)))
}

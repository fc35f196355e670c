package apierrors

import (
	"fmt"
	"net/http"

	"taskhub/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code, a stable category and a message.
type Err struct {
	Code     int    `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Category: %s, Message: %s", e.ErrDetails.Code, e.ErrDetails.Category, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message. The category is
// derived from the status code.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return CreateCategorizedError(code, CategoryFor(code), msgKey, lang)
}

func CreateCategorizedError(code int, category, msgKey, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{Code: code, Category: category, Message: message}}
}

func CategoryFor(code int) string {
	switch {
	case code == http.StatusNotFound:
		return CategoryNotFound
	case code == http.StatusBadGateway:
		return CategoryDependencyUnavailable
	case code >= 400 && code < 500:
		return CategoryInvalidRequest
	default:
		return CategoryInternal
	}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}

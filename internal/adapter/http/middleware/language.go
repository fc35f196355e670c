package middleware

import (
	"taskhub/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware negotiates the response language from the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", translator.Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

package translator

import (
	"fmt"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if len(cfg.SupportedLanguages) > 0 {
		tags := make([]language.Tag, 0, len(cfg.SupportedLanguages))
		for _, lang := range cfg.SupportedLanguages {
			tag, err := language.Parse(lang)
			if err != nil {
				zap.L().Warn("unsupported language", zap.String("lang", lang), zap.Error(err))
				continue
			}
			tags = append(tags, tag)
		}
		if len(tags) > 0 {
			matcher = language.NewMatcher(tags)
		}
	}

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		_, err := Translator.LoadMessageFile(filepath)
		if err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Negotiate picks the best supported language for an Accept-Language header.
// Empty or unparsable headers fall back to English.
func Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}
	base, _ := tag.Base()
	return base.String()
}

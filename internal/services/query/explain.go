package query

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"machine-tracking-backend/internal/llm"
)

// Explanations are only generated for small, specific result sets.
const maxExplainRows = 5

var fallbackExplanations = map[string]string{
	"es": "Encontré datos, pero no pude generar una explicación.",
	"en": "I found data, but could not generate an explanation.",
	"pt": "Encontrei dados, mas não consegui gerar uma explicação.",
}

func fallbackFor(lang, defaultLang string) string {
	if msg, ok := fallbackExplanations[strings.ToLower(lang)]; ok {
		return msg
	}
	if msg, ok := fallbackExplanations[defaultLang]; ok {
		return msg
	}
	return fallbackExplanations["es"]
}

// explain asks the backend for a one-line summary of the result set. A backend
// failure never fails the request; the caller gets the localized fallback
// sentence instead.
func (s *Service) explain(ctx context.Context, client llm.Client, rows []map[string]interface{}, question, lang string) *string {
	if len(rows) == 0 || len(rows) >= maxExplainRows {
		return nil
	}
	if strings.TrimSpace(lang) == "" {
		lang = s.defaultLanguage
	}

	fallback := fallbackFor(lang, s.defaultLanguage)

	serialized, err := json.Marshal(rows)
	if err != nil {
		zap.S().Warnw("failed to serialize rows for explanation", "error", err)
		return &fallback
	}

	text, err := client.Complete(ctx, buildExplainPrompt(question, string(serialized), lang))
	if err != nil {
		zap.S().Warnw("explanation generation failed", "error", err)
		return &fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return &fallback
	}
	return &text
}

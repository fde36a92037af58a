package query

import (
	"context"
	"fmt"

	"machine-tracking-backend/internal/apperrors"
	"machine-tracking-backend/internal/llm"
	"machine-tracking-backend/internal/repository"
)

// Answer is the query endpoint's response body. View suggests how the UI
// should render the rows: "CARD" for exactly one, "TABLE" for more, absent
// for none. Explanation is only present for small result sets.
type Answer struct {
	Results     []map[string]interface{} `json:"results"`
	SQL         string                   `json:"sql"`
	Explanation *string                  `json:"answer,omitempty"`
	View        string                   `json:"view,omitempty"`
}

type Service struct {
	repo            *repository.MachineRepository
	backends        *llm.Registry
	defaultLanguage string
}

func NewService(repo *repository.MachineRepository, backends *llm.Registry, defaultLanguage string) *Service {
	return &Service{
		repo:            repo,
		backends:        backends,
		defaultLanguage: defaultLanguage,
	}
}

// Ask runs the full question-to-answer pipeline: build the prompt, get a
// candidate SQL from the selected backend, gate it, execute it, and attach an
// explanation when the result is small enough to be worth one.
func (s *Service) Ask(ctx context.Context, question, lang, provider string) (*Answer, error) {
	client, err := s.backends.For(provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGenerationFailure, err)
	}

	raw, err := client.Complete(ctx, buildSQLPrompt(question))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGenerationFailure, err)
	}

	sqlText := stripFences(raw)
	if err := ValidateReadOnly(sqlText); err != nil {
		return nil, err
	}

	rows, err := s.repo.RunQuery(sqlText)
	if err != nil {
		return nil, err
	}

	answer := &Answer{Results: rows, SQL: sqlText}
	switch {
	case len(rows) == 1:
		answer.View = "CARD"
	case len(rows) > 1:
		answer.View = "TABLE"
	}

	answer.Explanation = s.explain(ctx, client, rows, question, lang)
	return answer, nil
}

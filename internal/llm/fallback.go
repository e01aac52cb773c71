package llm

import (
	"context"

	"github.com/rohitsharma007/automation-script-generator/internal/nlp"
)

// Fallback — детерминированный оракул без внешних сервисов: описание
// разбирается регулярными выражениями из internal/nlp.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) SuggestSteps(_ context.Context, description string) ([]nlp.TestStep, error) {
	return nlp.ParseSteps(description), nil
}

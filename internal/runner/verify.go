package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/rohitsharma007/automation-script-generator/internal/nlp"
	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

// Признаки успешного входа в адресе страницы.
var successURLKeywords = []string{"dashboard", "home", "welcome", "account", "profile", "inventory"}

// verifySuccess проверяет, что сценарий привел к ожидаемому состоянию.
// Сигналы в порядке убывания надежности: найден индикатор успеха,
// исчезла форма логина, адрес сменился на страницу успеха.
func (r *Runner) verifySuccess(ctx context.Context, session *resolve.Session, step nlp.TestStep, outcome *StepOutcome) error {
	targetType := step.ElementType
	if targetType == "" {
		targetType = resolve.TypeSuccessIndicator
	}

	res, err := session.Resolve(ctx, targetType, step.Selector)
	if err == nil {
		outcome.Selector = res.Selector
		outcome.Confidence = res.Confidence
		outcome.Strategy = res.Strategy
		return nil
	}

	if targetType != resolve.TypeSuccessIndicator {
		return fmt.Errorf("проверка не пройдена: %w", err)
	}

	if r.passwordFieldGone(ctx) {
		outcome.Detail = "форма логина исчезла со страницы"
		return nil
	}

	if url, uerr := r.browser.CurrentURL(); uerr == nil {
		lower := strings.ToLower(url)
		for _, kw := range successURLKeywords {
			if strings.Contains(lower, kw) {
				outcome.Detail = "адрес страницы указывает на успех: " + url
				return nil
			}
		}
	}

	return fmt.Errorf("проверка не пройдена: %w", err)
}

// passwordFieldGone — на странице не осталось видимых полей пароля.
func (r *Runner) passwordFieldGone(ctx context.Context) bool {
	els, err := r.browser.Page().QueryAll(ctx, `input[type="password"]`)
	if err != nil {
		return false
	}
	for _, el := range els {
		probe, err := el.Probe(ctx)
		if err != nil {
			continue
		}
		if probe.IsVisible() {
			return false
		}
	}
	return true
}

package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

type ErrorType int

const (
	ErrorTypeTemporary ErrorType = iota
	ErrorTypeCritical
	ErrorTypeRetryable
)

func (e ErrorType) String() string {
	switch e {
	case ErrorTypeTemporary:
		return "temporary"
	case ErrorTypeCritical:
		return "critical"
	case ErrorTypeRetryable:
		return "retryable"
	default:
		return "unknown"
	}
}

type StepError struct {
	Type    ErrorType
	Action  string
	Message string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// classifyError относит ошибку шага к классу: ненайденный элемент и
// сетевые сбои переживают ретрай (страница могла не дорисоваться —
// движок разрешения сам не ждет), остальное фатально для прогона.
func classifyError(action string, err error) *StepError {
	if err == nil {
		return nil
	}

	// Ядро не ретраит ненайденные элементы, это забота вызывающего.
	if errors.Is(err, resolve.ErrElementNotFound) {
		return &StepError{Type: ErrorTypeTemporary, Action: action, Message: err.Error(), Err: err}
	}

	errStr := err.Error()
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "connection") ||
		strings.Contains(errStr, "ECONNREFUSED") ||
		strings.Contains(errStr, "ETIMEDOUT") {
		return &StepError{Type: ErrorTypeRetryable, Action: action, Message: errStr, Err: err}
	}

	if strings.Contains(errStr, "not found") ||
		strings.Contains(errStr, "selector") ||
		strings.Contains(errStr, "element") ||
		strings.Contains(errStr, "не найден") {
		return &StepError{Type: ErrorTypeTemporary, Action: action, Message: errStr, Err: err}
	}

	return &StepError{Type: ErrorTypeCritical, Action: action, Message: errStr, Err: err}
}

// retryAction повторяет действие при временных ошибках с паузой между
// попытками. Критические ошибки возвращаются сразу.
func retryAction(ctx context.Context, maxRetries int, delay time.Duration, fn func() error) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if classifyError("", err).Type == ErrorTypeCritical {
			return err
		}
	}

	return fmt.Errorf("после %d попыток: %w", maxRetries, lastErr)
}

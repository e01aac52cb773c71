package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrElementNotFound возвращается, когда все стратегии и fallback
// селектор исчерпаны. Это единственная ошибка, которую ядро отдает
// наружу: сбои отдельных стратегий поглощаются конвейером.
var ErrElementNotFound = errors.New("элемент не найден")

// NotFoundError несет контекст для диагностики: какой тип искали и
// какие стратегии успели отработать. Разворачивается в ErrElementNotFound.
type NotFoundError struct {
	ElementType string
	Attempted   []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("элемент %q не найден (стратегии: %s)",
		e.ElementType, strings.Join(e.Attempted, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrElementNotFound
}

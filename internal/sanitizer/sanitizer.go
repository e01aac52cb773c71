// Package sanitizer маскирует учетные данные перед записью результатов
// прогона в лог и базу: значения password-полей, токены и адреса почты
// не должны попадать в историю в открытом виде.
package sanitizer

import (
	"regexp"
	"strings"
)

type DataSanitizer struct {
	rules []Rule
}

type Rule interface {
	Sanitize(text string) string
}

func New() *DataSanitizer {
	return &DataSanitizer{
		rules: []Rule{
			&passwordRule{},
			&tokenRule{},
			&emailRule{},
		},
	}
}

// Sanitize прогоняет текст через все правила маскирования.
func (s *DataSanitizer) Sanitize(text string) string {
	if text == "" {
		return text
	}

	result := text
	for _, rule := range s.rules {
		result = rule.Sanitize(result)
	}
	return result
}

// SanitizeSelector фильтрует селекторы, из которых читается характер
// данных поля: сам селектор с "password" в id безопасен, но политика
// единая для всей истории прогонов.
func (s *DataSanitizer) SanitizeSelector(selector string) string {
	if selector == "" {
		return selector
	}

	lower := strings.ToLower(selector)
	for _, keyword := range []string{"token", "api-key", "api_key", "secret"} {
		if strings.Contains(lower, keyword) {
			return "[FILTERED_SELECTOR]"
		}
	}
	return selector
}

// MaskStepValue маскирует значение шага перед записью. Для
// password-полей значение скрывается всегда, для остальных —
// по общим правилам.
func (s *DataSanitizer) MaskStepValue(elementType, value string) string {
	if value == "" {
		return value
	}
	if elementType == "password" || looksLikeSecret(value) {
		return "[FILTERED]"
	}
	return s.Sanitize(value)
}

var secretShapeRe = regexp.MustCompile(`^[A-Za-z0-9_\-]{24,}$`)

// looksLikeSecret ловит длинные токеноподобные строки без пробелов.
func looksLikeSecret(value string) bool {
	lower := strings.ToLower(value)
	for _, pattern := range []string{"secret", "token", "cvv", "session"} {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return secretShapeRe.MatchString(value)
}

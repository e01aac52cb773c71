package browser

import (
	"fmt"
	"regexp"
	"strings"
)

// NormalizeSelector преобразует невалидные синтаксисы селекторов в
// валидные для Playwright: jQuery :contains() в :has-text(), а также
// форму "button: Текст" (частая ошибка в шагах теста и в подсказках
// LLM) в "button:has-text('Текст')". Возвращает нормализованный
// селектор и флаг, был ли он изменен.
func NormalizeSelector(selector string) (string, bool) {
	if selector == "" {
		return selector, false
	}

	normalized := selector
	changed := false

	// "tag: Текст" → "tag:has-text("Текст")", если после двоеточия не
	// валидный псевдокласс
	colonSpacePattern := regexp.MustCompile(`^([^:]+):\s+(.+)$`)
	if submatch := colonSpacePattern.FindStringSubmatch(normalized); len(submatch) >= 3 {
		tagPart := strings.TrimSpace(submatch[1])
		textPart := strings.TrimSpace(submatch[2])

		validPseudoClasses := []string{":hover", ":focus", ":active", ":visited", ":link", ":checked",
			":disabled", ":enabled", ":first-child", ":last-child", ":nth-child", ":nth-of-type",
			":has-text", ":has", ":not", ":contains"}
		isValidPseudo := false
		for _, pseudo := range validPseudoClasses {
			if strings.HasSuffix(tagPart, pseudo) || strings.Contains(normalized, pseudo+"(") {
				isValidPseudo = true
				break
			}
		}

		if !isValidPseudo && tagPart != "" && textPart != "" {
			changed = true
			textPart = strings.ReplaceAll(textPart, `"`, `\"`)
			normalized = tagPart + `:has-text("` + textPart + `")`
		}
	}

	// :contains("text") / :contains('text') → :has-text(...)
	containsPatternDouble := regexp.MustCompile(`:contains\("([^"]*)"\)`)
	normalized = containsPatternDouble.ReplaceAllStringFunc(normalized, func(match string) string {
		changed = true
		submatch := containsPatternDouble.FindStringSubmatch(match)
		if len(submatch) >= 2 {
			text := strings.ReplaceAll(submatch[1], "\\", "\\\\")
			text = strings.ReplaceAll(text, `"`, `\"`)
			return `:has-text("` + text + `")`
		}
		return match
	})

	containsPatternSingle := regexp.MustCompile(`:contains\('([^']*)'\)`)
	normalized = containsPatternSingle.ReplaceAllStringFunc(normalized, func(match string) string {
		changed = true
		submatch := containsPatternSingle.FindStringSubmatch(match)
		if len(submatch) >= 2 {
			text := strings.ReplaceAll(submatch[1], "\\", "\\\\")
			text = strings.ReplaceAll(text, `'`, `\'`)
			return `:has-text('` + text + `')`
		}
		return match
	})

	// :contains(text) без кавычек
	containsPatternNoQuotes := regexp.MustCompile(`:contains\(([^)]+)\)`)
	normalized = containsPatternNoQuotes.ReplaceAllStringFunc(normalized, func(match string) string {
		if strings.Contains(match, `:has-text(`) {
			return match
		}
		changed = true
		submatch := containsPatternNoQuotes.FindStringSubmatch(match)
		if len(submatch) >= 2 {
			return `:has-text("` + strings.TrimSpace(submatch[1]) + `")`
		}
		return match
	})

	return normalized, changed
}

// ValidateSelector проверяет, что селектор не является URL: частая
// ошибка в шагах теста — подставить адрес вместо селектора клика.
func ValidateSelector(selector string) error {
	if selector == "" {
		return fmt.Errorf("селектор не может быть пустым")
	}

	trimmed := strings.TrimSpace(selector)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return fmt.Errorf("селектор не может быть URL, для перехода используется действие navigate: %s", selector)
	}
	if strings.Contains(trimmed, "://") {
		return fmt.Errorf("селектор не может содержать протокол: %s", selector)
	}

	return nil
}

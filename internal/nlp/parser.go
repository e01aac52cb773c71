// Package nlp разбирает шаги теста на естественном языке в
// структурированные действия. Никакого ML: упорядоченные регулярные
// выражения и ключевые слова, зато детерминированно и без внешних
// сервисов.
package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// Действия, которые понимает исполнитель шагов.
const (
	ActionNavigate = "navigate"
	ActionFill     = "fill"
	ActionClick    = "click"
	ActionSelect   = "select"
	ActionVerify   = "verify"
	ActionWait     = "wait"
	ActionUnknown  = "unknown"
)

// TestStep — один разобранный шаг. ElementType заполняется, когда
// цель шага похожа на известный семантический тип: исполнитель тогда
// ищет элемент через движок разрешения, а не по селектору.
type TestStep struct {
	StepNo      int     `json:"step_no"`
	Action      string  `json:"action"`
	ElementType string  `json:"element_type,omitempty"`
	Selector    string  `json:"selector,omitempty"`
	Value       string  `json:"value,omitempty"`
	WaitSeconds int     `json:"wait_seconds,omitempty"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type actionPattern struct {
	action     string
	re         *regexp.Regexp
	confidence float64
}

// Порядок проверки важен: более специфичные шаблоны первыми, иначе
// "select X from Y" разобрался бы как click.
var actionPatterns = []actionPattern{
	{ActionSelect, regexp.MustCompile(`(?i)^select\s+(.+?)\s+from\s+(.+)$`), 0.8},
	{ActionNavigate, regexp.MustCompile(`(?i)^(?:go to|navigate to|visit|open)\s+(.+)$`), 0.9},
	{ActionFill, regexp.MustCompile(`(?i)^(?:fill|enter|type|input)\s+(?:in\s+|the\s+)*(.+?)\s+(?:with|as)\s+(.+)$`), 0.85},
	{ActionClick, regexp.MustCompile(`(?i)^(?:click|press|tap)(?:\s+on)?\s+(?:the\s+)?(.+)$`), 0.8},
	{ActionVerify, regexp.MustCompile(`(?i)^(?:verify|check|assert|confirm)\s+(?:that\s+)?(.+)$`), 0.7},
	{ActionWait, regexp.MustCompile(`(?i)^wait(?:\s+for)?(?:\s+(\d+))?(?:\s+seconds?)?$`), 0.9},
}

// Явные селекторы внутри текста шага: #id, .class, name=..., text=...
var (
	idSelectorRe    = regexp.MustCompile(`#[\w-]+`)
	classSelectorRe = regexp.MustCompile(`\.[\w-]+`)
	nameSelectorRe  = regexp.MustCompile(`(?i)name=["']?([\w-]+)["']?`)
	textSelectorRe  = regexp.MustCompile(`(?i)text=["']?([^"']+)["']?`)
	stepPrefixRe    = regexp.MustCompile(`(?i)^(?:step\s+\d+[:.)]\s*|\d+[:.)]\s*|[-*]\s*)`)
)

// Ключевые слова для угадывания семантического типа цели шага.
var elementTypeKeywords = []struct {
	elementType string
	words       []string
}{
	{"password", []string{"password", "пароль"}},
	{"username", []string{"email", "username", "user name", "login field", "логин", "почт"}},
	{"loginButton", []string{"login", "log in", "sign in", "submit", "войти"}},
	{"successIndicator", []string{"dashboard", "welcome", "home page", "profile", "logout"}},
}

// ParseSteps разбирает многострочный сценарий: каждая непустая строка —
// один шаг, префиксы вида "Step 2:" или "3." отбрасываются.
func ParseSteps(text string) []TestStep {
	var steps []TestStep
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		step := ParseStep(line)
		step.StepNo = len(steps) + 1
		steps = append(steps, step)
	}
	return steps
}

// ParseStep разбирает одну фразу в действие.
func ParseStep(line string) TestStep {
	line = strings.TrimSpace(stepPrefixRe.ReplaceAllString(strings.TrimSpace(line), ""))

	step := TestStep{
		Action:      ActionUnknown,
		Description: line,
		Confidence:  0.3,
	}

	for _, p := range actionPatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		step.Action = p.action
		step.Confidence = p.confidence

		switch p.action {
		case ActionNavigate:
			step.Value = strings.TrimSpace(m[1])
		case ActionFill:
			target := strings.TrimSpace(m[1])
			step.Value = strings.Trim(strings.TrimSpace(m[2]), `"'`)
			step.Selector = ExtractSelector(target)
			step.ElementType = GuessElementType(target)
		case ActionClick, ActionVerify:
			target := strings.TrimSpace(m[1])
			step.Selector = ExtractSelector(target)
			step.ElementType = GuessElementType(target)
		case ActionSelect:
			step.Value = strings.Trim(strings.TrimSpace(m[1]), `"'`)
			target := strings.TrimSpace(m[2])
			step.Selector = ExtractSelector(target)
			step.ElementType = GuessElementType(target)
		case ActionWait:
			step.WaitSeconds = 1
			if len(m) > 1 && m[1] != "" {
				if n, err := strconv.Atoi(m[1]); err == nil {
					step.WaitSeconds = n
				}
			}
		}
		break
	}

	return step
}

// ExtractSelector достает явный селектор из текста шага, если он там
// есть. Пустая строка означает "селектора нет, ищи по типу".
func ExtractSelector(text string) string {
	if m := idSelectorRe.FindString(text); m != "" {
		return m
	}
	if m := nameSelectorRe.FindStringSubmatch(text); m != nil {
		return `[name="` + m[1] + `"]`
	}
	if m := textSelectorRe.FindStringSubmatch(text); m != nil {
		return `:has-text("` + strings.TrimSpace(m[1]) + `")`
	}
	if m := classSelectorRe.FindString(text); m != "" {
		return m
	}
	return ""
}

// GuessElementType угадывает семантический тип цели по ключевым
// словам. Порядок проверки важен: "login password" — это password,
// не loginButton.
func GuessElementType(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range elementTypeKeywords {
		for _, w := range kw.words {
			if strings.Contains(lower, w) {
				return kw.elementType
			}
		}
	}
	return ""
}

package resolve

import "strings"

// Две таблицы весов: отчетная (абсолютная уверенность 0-100 для
// вызывающего) и семантическая (сравнительное ранжирование внутри
// стратегии 6). Таблицы настраиваются независимо и не должны быть
// схлопнуты в одну.

// features — общие признаки элемента относительно искомого типа.
type features struct {
	typeMatch     bool // точное совпадение type (email/password/submit)
	typeTextInput bool // type=="text", учитывается только для username
	tagButton     bool // тег button, учитывается только для loginButton
	textMatch     bool // текст/value/placeholder содержит ключевое слово
	attrMatch     bool // id/name/class содержит ключевое слово
}

// Ключевые слова по типам. Для незнакомых типов признаки пустые и
// скоринг дает только бонусы видимости.
var typeKeywords = map[string]struct {
	exactType string
	words     []string
}{
	TypeUsername:    {exactType: "email", words: []string{"user", "email"}},
	TypePassword:    {exactType: "password", words: []string{"pass"}},
	TypeLoginButton: {exactType: "submit", words: []string{"login", "sign"}},
}

func extractFeatures(p *Probe, elementType string) features {
	kw, ok := typeKeywords[elementType]
	if !ok {
		return features{}
	}

	var f features
	f.typeMatch = strings.EqualFold(p.Type, kw.exactType)
	f.typeTextInput = strings.EqualFold(p.Type, "text")
	f.tagButton = strings.EqualFold(p.Tag, "button")

	text := strings.ToLower(p.Text + " " + p.Value + " " + p.Placeholder)
	attrs := strings.ToLower(p.ID + " " + p.Name + " " + strings.Join(p.Classes, " "))
	for _, w := range kw.words {
		if strings.Contains(text, w) {
			f.textMatch = true
		}
		if strings.Contains(attrs, w) {
			f.attrMatch = true
		}
	}
	return f
}

// ReportScore — абсолютная оценка уверенности [0,100], возвращаемая
// вызывающему после любой успешной стратегии.
func ReportScore(p *Probe, elementType string) int {
	f := extractFeatures(p, elementType)
	score := 0

	switch elementType {
	case TypeUsername:
		if f.typeMatch {
			score += 30
		}
		if f.typeTextInput {
			score += 20
		}
		if f.textMatch {
			score += 25
		}
		if f.attrMatch {
			score += 20
		}
	case TypePassword:
		if f.typeMatch {
			score += 40
		}
		if f.textMatch {
			score += 25
		}
		if f.attrMatch {
			score += 20
		}
	case TypeLoginButton:
		if f.typeMatch {
			score += 30
		}
		if f.tagButton {
			score += 25
		}
		if f.textMatch {
			score += 20
		}
	}

	// Бонусы видимости — для всех типов, включая незарегистрированные.
	if p.Displayed {
		score += 10
	}
	if p.Width > 0 && p.Height > 0 {
		score += 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// semanticScore — сравнительная оценка для стратегии 6. Меньшие веса,
// без клампа: сравнивается только между кандидатами одной страницы.
// Ноль означает "не кандидат".
func semanticScore(p *Probe, elementType string) int {
	f := extractFeatures(p, elementType)
	score := 0

	switch elementType {
	case TypeUsername, TypePassword:
		if f.typeMatch {
			score += 10
		}
		if f.textMatch {
			score += 8
		}
		if f.attrMatch {
			score += 6
		}
	case TypeLoginButton:
		if f.typeMatch {
			score += 8
		}
		if f.textMatch {
			score += 6
		}
		if f.attrMatch {
			score += 4
		}
	}

	// Видимость участвует в ранжировании мягко, не как жесткий фильтр.
	if score > 0 && p.Visible {
		score += 2
	}
	return score
}

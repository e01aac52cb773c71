package resolve

import (
	"context"
	"fmt"
	"strings"
)

// detection — результат одной стратегии. Селектор для отчета всегда
// синтезируется сессией заново по самому элементу: селектор запроса
// (например `input[type="password"]`) мог совпасть не только с ним.
// Selector заполняется только доверенным fallback-путем.
type detection struct {
	element  Element
	probe    *Probe
	selector string
	strategy string
}

// strategy — один самостоятельный алгоритм поиска. Ошибки внутри
// стратегии означают "ничего не нашла": конвейер идет дальше.
type strategy struct {
	name string
	run  func(ctx context.Context, page Page, entry PatternEntry, elementType string) (*detection, error)
}

// pipeline — фиксированный порядок стратегий: от точных и дешевых к
// сканирующим весь документ. Первый успех останавливает конвейер,
// даже если поздняя стратегия дала бы более уверенный результат.
var pipeline = []strategy{
	{name: "direct-selector", run: runDirectSelector},
	{name: "attribute-substring", run: runAttributeSubstring},
	{name: "label-association", run: runLabelAssociation},
	{name: "placeholder", run: runPlaceholder},
	{name: "button-text", run: runButtonText},
	{name: "semantic-scoring", run: runSemanticScoring},
	{name: "structural", run: runStructural},
}

// firstVisible возвращает первый видимый элемент по селектору вместе
// с его Probe. Невидимые совпадения пропускаются.
func firstVisible(ctx context.Context, page Page, selector string) (Element, *Probe, error) {
	els, err := page.QueryAll(ctx, selector)
	if err != nil {
		return nil, nil, err
	}
	for _, el := range els {
		p, err := el.Probe(ctx)
		if err != nil {
			continue
		}
		if p.IsVisible() {
			return el, p, nil
		}
	}
	return nil, nil, nil
}

// Стратегия 1: селекторы каталога в авторском порядке, затем классы
// из CSSClasses как ".class". Порядок каталога и есть приоритет.
func runDirectSelector(ctx context.Context, page Page, entry PatternEntry, _ string) (*detection, error) {
	selectors := append([]string(nil), entry.Selectors...)
	for _, cls := range entry.CSSClasses {
		selectors = append(selectors, "."+cls)
	}
	for _, sel := range selectors {
		el, p, err := firstVisible(ctx, page, sel)
		if err != nil {
			continue
		}
		if el != nil {
			return &detection{element: el, probe: p, strategy: "direct-selector"}, nil
		}
	}
	return nil, nil
}

// Стратегия 2: поиск фрагмента в name/id/class/data-атрибутах.
func runAttributeSubstring(ctx context.Context, page Page, entry PatternEntry, _ string) (*detection, error) {
	for _, frag := range entry.AttributeFragments {
		candidates := []string{
			fmt.Sprintf(`[name*="%s"]`, frag),
			fmt.Sprintf(`[id*="%s"]`, frag),
			fmt.Sprintf(`[class*="%s"]`, frag),
			fmt.Sprintf(`[data-testid*="%s"]`, frag),
		}
		for _, sel := range candidates {
			el, p, err := firstVisible(ctx, page, sel)
			if err != nil {
				continue
			}
			if el != nil {
				return &detection{element: el, probe: p, strategy: "attribute-substring"}, nil
			}
		}
	}
	return nil, nil
}

// Стратегия 3: поиск <label> по тексту, затем привязанный контрол:
// атрибут for, вложенный input, input в следующем соседе — в этом
// порядке предпочтения.
func runLabelAssociation(ctx context.Context, page Page, entry PatternEntry, _ string) (*detection, error) {
	if len(entry.LabelTexts) == 0 {
		return nil, nil
	}
	labels, err := page.QueryAll(ctx, "label")
	if err != nil || len(labels) == 0 {
		return nil, nil
	}

	type probed struct {
		label Element
		probe *Probe
	}
	items := make([]probed, 0, len(labels))
	for _, l := range labels {
		p, err := l.Probe(ctx)
		if err != nil {
			continue
		}
		items = append(items, probed{label: l, probe: p})
	}

	for _, phrase := range entry.LabelTexts {
		want := strings.ToLower(phrase)
		for _, it := range items {
			if !strings.Contains(strings.ToLower(it.probe.Text), want) {
				continue
			}
			if det := controlForLabel(ctx, page, it.label, it.probe); det != nil {
				return det, nil
			}
		}
	}
	return nil, nil
}

func controlForLabel(ctx context.Context, page Page, label Element, lp *Probe) *detection {
	try := func(el Element) *detection {
		if el == nil {
			return nil
		}
		p, err := el.Probe(ctx)
		if err != nil || !p.IsVisible() {
			return nil
		}
		return &detection{element: el, probe: p, strategy: "label-association"}
	}

	if lp.For != "" {
		el, err := page.Query(ctx, fmt.Sprintf(`[id="%s"]`, lp.For))
		if err == nil {
			if det := try(el); det != nil {
				return det
			}
		}
	}
	if el, err := label.Query(ctx, "input"); err == nil {
		if det := try(el); det != nil {
			return det
		}
	}
	if sib, err := label.NextSibling(ctx); err == nil && sib != nil {
		if el, err := sib.Query(ctx, "input"); err == nil {
			if det := try(el); det != nil {
				return det
			}
		}
	}
	return nil
}

// Стратегия 4: подстрока placeholder. Регистрозависимо.
func runPlaceholder(ctx context.Context, page Page, entry PatternEntry, _ string) (*detection, error) {
	for _, ph := range entry.PlaceholderTexts {
		sel := fmt.Sprintf(`[placeholder*="%s"]`, ph)
		el, p, err := firstVisible(ctx, page, sel)
		if err != nil {
			continue
		}
		if el != nil {
			return &detection{element: el, probe: p, strategy: "placeholder"}, nil
		}
	}
	return nil, nil
}

// Стратегия 5: текст кнопок и ссылок, без учета регистра. Для input
// без текста сравнивается value.
func runButtonText(ctx context.Context, page Page, entry PatternEntry, _ string) (*detection, error) {
	if len(entry.ButtonTexts) == 0 {
		return nil, nil
	}
	els, err := page.QueryAll(ctx, `button, input[type="submit"], input[type="button"], a`)
	if err != nil || len(els) == 0 {
		return nil, nil
	}

	type probed struct {
		el    Element
		probe *Probe
	}
	items := make([]probed, 0, len(els))
	for _, el := range els {
		p, err := el.Probe(ctx)
		if err != nil {
			continue
		}
		items = append(items, probed{el: el, probe: p})
	}

	for _, phrase := range entry.ButtonTexts {
		want := strings.ToLower(phrase)
		for _, it := range items {
			text := it.probe.Text
			if text == "" {
				text = it.probe.Value
			}
			if !strings.Contains(strings.ToLower(text), want) {
				continue
			}
			if it.probe.IsVisible() {
				return &detection{element: it.el, probe: it.probe, strategy: "button-text"}, nil
			}
		}
	}
	return nil, nil
}

// Стратегия 6: семантический скоринг всех полей ввода страницы.
// Жесткого фильтра видимости нет: видимость дает бонус в самой оценке.
// При равенстве очков побеждает первый в порядке DOM.
func runSemanticScoring(ctx context.Context, page Page, _ PatternEntry, elementType string) (*detection, error) {
	els, err := page.QueryAll(ctx, "input, button, select, textarea")
	if err != nil {
		return nil, nil
	}

	var best *detection
	bestScore := 0
	for _, el := range els {
		p, err := el.Probe(ctx)
		if err != nil {
			continue
		}
		if score := semanticScore(p, elementType); score > bestScore {
			bestScore = score
			best = &detection{element: el, probe: p, strategy: "semantic-scoring"}
		}
	}
	return best, nil
}

// Стратегия 7: позиционные правила внутри форм, похожих на форму
// логина (минимум два input).
func runStructural(ctx context.Context, page Page, _ PatternEntry, elementType string) (*detection, error) {
	forms, err := page.QueryAll(ctx, "form")
	if err != nil {
		return nil, nil
	}

	for _, form := range forms {
		inputs, err := form.QueryAll(ctx, "input")
		if err != nil || len(inputs) < 2 {
			continue
		}

		var el Element
		switch elementType {
		case TypeUsername:
			el = firstTextualInput(ctx, inputs)
		case TypePassword:
			el, _ = form.Query(ctx, `input[type="password"]`)
		case TypeLoginButton:
			el = formSubmitControl(ctx, form)
		default:
			return nil, nil
		}
		if el == nil {
			continue
		}
		p, err := el.Probe(ctx)
		if err != nil {
			continue
		}
		return &detection{element: el, probe: p, strategy: "structural"}, nil
	}
	return nil, nil
}

// firstTextualInput — первый input, который не password/hidden/submit.
func firstTextualInput(ctx context.Context, inputs []Element) Element {
	for _, in := range inputs {
		p, err := in.Probe(ctx)
		if err != nil {
			continue
		}
		switch strings.ToLower(p.Type) {
		case "password", "hidden", "submit":
			continue
		}
		return in
	}
	return nil
}

func formSubmitControl(ctx context.Context, form Element) Element {
	for _, sel := range []string{`button[type="submit"]`, `input[type="submit"]`, "button"} {
		if el, err := form.Query(ctx, sel); err == nil && el != nil {
			return el
		}
	}
	return nil
}

package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

// probeScript снимает все нужные резолверу свойства элемента одним
// вызовом Evaluate: атрибуты, видимость по computed style, геометрию и
// цепочку предков для структурных селекторов. Один round-trip на
// кандидата вместо N+1 запросов по отдельным свойствам.
const probeScript = `el => {
	const rect = el.getBoundingClientRect();
	const style = window.getComputedStyle(el);
	const displayed = style.display !== 'none';
	const visible = displayed &&
		style.visibility !== 'hidden' &&
		style.opacity !== '0' &&
		rect.width > 0 && rect.height > 0;

	const path = [];
	let cur = el;
	for (let depth = 0; cur && cur.nodeType === 1 && cur.tagName !== 'BODY' && cur.tagName !== 'HTML' && depth < 6; depth++) {
		const parent = cur.parentElement;
		let idx = 0, count = 0;
		if (parent) {
			count = parent.children.length;
			idx = Array.prototype.indexOf.call(parent.children, cur) + 1;
		}
		const cls = (typeof cur.className === 'string' ? cur.className : '').trim().split(/\s+/).filter(Boolean);
		path.push({
			tag: cur.tagName.toLowerCase(),
			id: cur.id || '',
			firstClass: cls[0] || '',
			nthIndex: idx,
			siblingCount: count
		});
		cur = parent;
	}

	const classes = (typeof el.className === 'string' ? el.className : '').trim().split(/\s+/).filter(Boolean);
	return {
		tag: el.tagName.toLowerCase(),
		type: el.getAttribute('type') || (el.tagName === 'INPUT' ? el.type : '') || '',
		id: el.id || '',
		name: el.getAttribute('name') || '',
		classes: classes,
		text: (el.textContent || '').trim().substring(0, 200),
		value: el.value || '',
		placeholder: el.getAttribute('placeholder') || '',
		forAttr: el.getAttribute('for') || '',
		displayed: displayed,
		visible: visible,
		width: rect.width,
		height: rect.height,
		path: path
	};
}`

// pageAdapter реализует resolve.Page поверх текущей страницы браузера.
type pageAdapter struct {
	b *PlaywrightBrowser
}

func (a *pageAdapter) Query(ctx context.Context, selector string) (resolve.Element, error) {
	page := a.b.getPage()
	if page == nil {
		return nil, fmt.Errorf("браузер не запущен")
	}
	handle, err := page.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, nil
	}
	return &elementAdapter{handle: handle, page: a}, nil
}

func (a *pageAdapter) QueryAll(ctx context.Context, selector string) ([]resolve.Element, error) {
	page := a.b.getPage()
	if page == nil {
		return nil, fmt.Errorf("браузер не запущен")
	}
	handles, err := page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	out := make([]resolve.Element, len(handles))
	for i, h := range handles {
		out[i] = &elementAdapter{handle: h, page: a}
	}
	return out, nil
}

func (a *pageAdapter) Count(ctx context.Context, selector string) (int, error) {
	page := a.b.getPage()
	if page == nil {
		return 0, fmt.Errorf("браузер не запущен")
	}
	result, err := page.Evaluate(`sel => document.querySelectorAll(sel).length`, selector)
	if err != nil {
		return 0, err
	}
	return asInt(result), nil
}

func (a *pageAdapter) URL() string {
	page := a.b.getPage()
	if page == nil {
		return ""
	}
	return page.URL()
}

// elementAdapter реализует resolve.Element поверх playwright handle.
type elementAdapter struct {
	handle playwright.ElementHandle
	page   *pageAdapter
}

func (e *elementAdapter) Probe(ctx context.Context) (*resolve.Probe, error) {
	result, err := e.handle.Evaluate(probeScript)
	if err != nil {
		return nil, fmt.Errorf("ошибка снятия свойств элемента: %w", err)
	}
	raw, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("неожиданный результат probe: %T", result)
	}
	return parseProbe(raw), nil
}

func (e *elementAdapter) Query(ctx context.Context, selector string) (resolve.Element, error) {
	handle, err := e.handle.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, nil
	}
	return &elementAdapter{handle: handle, page: e.page}, nil
}

func (e *elementAdapter) QueryAll(ctx context.Context, selector string) ([]resolve.Element, error) {
	handles, err := e.handle.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	out := make([]resolve.Element, len(handles))
	for i, h := range handles {
		out[i] = &elementAdapter{handle: h, page: e.page}
	}
	return out, nil
}

func (e *elementAdapter) NextSibling(ctx context.Context) (resolve.Element, error) {
	jsHandle, err := e.handle.EvaluateHandle(`el => el.nextElementSibling`)
	if err != nil {
		return nil, err
	}
	sibling := jsHandle.AsElement()
	if sibling == nil {
		return nil, nil
	}
	return &elementAdapter{handle: sibling, page: e.page}, nil
}

func (e *elementAdapter) Fill(ctx context.Context, value string) error {
	return e.handle.Fill(value)
}

func (e *elementAdapter) Click(ctx context.Context) error {
	return e.handle.Click()
}

func parseProbe(raw map[string]interface{}) *resolve.Probe {
	p := &resolve.Probe{
		Tag:         asString(raw["tag"]),
		Type:        asString(raw["type"]),
		ID:          asString(raw["id"]),
		Name:        asString(raw["name"]),
		Text:        asString(raw["text"]),
		Value:       asString(raw["value"]),
		Placeholder: asString(raw["placeholder"]),
		For:         asString(raw["forAttr"]),
		Displayed:   asBool(raw["displayed"]),
		Visible:     asBool(raw["visible"]),
		Width:       asFloat(raw["width"]),
		Height:      asFloat(raw["height"]),
	}

	if classes, ok := raw["classes"].([]interface{}); ok {
		for _, c := range classes {
			if s := asString(c); s != "" {
				p.Classes = append(p.Classes, s)
			}
		}
	}

	if path, ok := raw["path"].([]interface{}); ok {
		for _, item := range path {
			node, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			p.Path = append(p.Path, resolve.PathNode{
				Tag:          asString(node["tag"]),
				ID:           asString(node["id"]),
				FirstClass:   asString(node["firstClass"]),
				NthIndex:     asInt(node["nthIndex"]),
				SiblingCount: asInt(node["siblingCount"]),
			})
		}
	}

	return p
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asBool(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func asInt(v interface{}) int {
	return int(asFloat(v))
}

package resolve

// In-memory DOM для тестов ядра: маленькое дерево узлов и матчер
// простых CSS селекторов (tag, #id, .class, [attr="v"], [attr*="v"],
// списки через запятую) — ровно то подмножество, которым пользуются
// стратегии и синтезатор.

import (
	"context"
	"strings"
)

type fakeNode struct {
	tag      string
	attrs    map[string]string
	text     string
	children []*fakeNode
	parent   *fakeNode

	displayNone      bool
	visibilityHidden bool
	opacityZero      bool
	width, height    float64

	filled  string
	clicked int
}

func el(tag string, attrs map[string]string, kids ...*fakeNode) *fakeNode {
	if attrs == nil {
		attrs = map[string]string{}
	}
	n := &fakeNode{tag: tag, attrs: attrs, width: 100, height: 20}
	for _, k := range kids {
		k.parent = n
		n.children = append(n.children, k)
	}
	return n
}

func elText(tag string, attrs map[string]string, text string, kids ...*fakeNode) *fakeNode {
	n := el(tag, attrs, kids...)
	n.text = text
	return n
}

func hidden(n *fakeNode) *fakeNode {
	n.displayNone = true
	return n
}

func (n *fakeNode) attr(name string) string { return n.attrs[name] }

// typeOf повторяет DOM-семантику: у input без атрибута type тип "text".
func (n *fakeNode) typeOf() string {
	if t := n.attr("type"); t != "" {
		return t
	}
	if n.tag == "input" {
		return "text"
	}
	return ""
}

func (n *fakeNode) classes() []string {
	return strings.Fields(n.attr("class"))
}

func (n *fakeNode) isDisplayed() bool { return !n.displayNone }

func (n *fakeNode) isVisible() bool {
	return !n.displayNone && !n.visibilityHidden && !n.opacityZero &&
		n.width > 0 && n.height > 0
}

// walk обходит поддерево в порядке DOM, сам узел не включается.
func (n *fakeNode) walk(fn func(*fakeNode)) {
	for _, c := range n.children {
		fn(c)
		c.walk(fn)
	}
}

// matchesSelector проверяет один простой селектор без комбинаторов.
func (n *fakeNode) matchesSelector(sel string) bool {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return false
	}

	i := 0
	// Опциональный тег в начале.
	for i < len(sel) && sel[i] != '#' && sel[i] != '.' && sel[i] != '[' {
		i++
	}
	if tag := sel[:i]; tag != "" && tag != "*" && tag != n.tag {
		return false
	}

	for i < len(sel) {
		switch sel[i] {
		case '#':
			j := i + 1
			for j < len(sel) && sel[j] != '.' && sel[j] != '[' && sel[j] != '#' {
				j++
			}
			if n.attr("id") != sel[i+1:j] {
				return false
			}
			i = j
		case '.':
			j := i + 1
			for j < len(sel) && sel[j] != '.' && sel[j] != '[' && sel[j] != '#' {
				j++
			}
			found := false
			for _, c := range n.classes() {
				if c == sel[i+1:j] {
					found = true
				}
			}
			if !found {
				return false
			}
			i = j
		case '[':
			j := strings.IndexByte(sel[i:], ']')
			if j < 0 {
				return false
			}
			if !n.matchesAttr(sel[i+1 : i+j]) {
				return false
			}
			i += j + 1
		default:
			return false
		}
	}
	return true
}

func (n *fakeNode) matchesAttr(expr string) bool {
	substring := false
	op := strings.Index(expr, "*=")
	if op >= 0 {
		substring = true
	} else {
		op = strings.IndexByte(expr, '=')
	}
	if op < 0 {
		return n.attr(expr) != ""
	}

	name := expr[:op]
	val := expr[op+1:]
	if substring {
		val = expr[op+2:]
	}
	val = strings.Trim(val, `"'`)

	got := n.attr(name)
	if name == "type" {
		got = n.typeOf()
	}
	if substring {
		return got != "" && strings.Contains(got, val)
	}
	return got == val
}

func (n *fakeNode) matches(selector string) bool {
	for _, part := range strings.Split(selector, ",") {
		if n.matchesSelector(part) {
			return true
		}
	}
	return false
}

func (n *fakeNode) queryAll(selector string) []*fakeNode {
	var out []*fakeNode
	n.walk(func(c *fakeNode) {
		if c.matches(selector) {
			out = append(out, c)
		}
	})
	return out
}

// fakePage реализует Page поверх дерева fakeNode.
type fakePage struct {
	root *fakeNode
	url  string
}

func newFakePage(kids ...*fakeNode) *fakePage {
	return &fakePage{root: el("body", nil, kids...), url: "https://example.test/login"}
}

func (p *fakePage) Query(_ context.Context, selector string) (Element, error) {
	all := p.root.queryAll(selector)
	if len(all) == 0 {
		return nil, nil
	}
	return &fakeElement{node: all[0], page: p}, nil
}

func (p *fakePage) QueryAll(_ context.Context, selector string) ([]Element, error) {
	all := p.root.queryAll(selector)
	out := make([]Element, len(all))
	for i, n := range all {
		out[i] = &fakeElement{node: n, page: p}
	}
	return out, nil
}

func (p *fakePage) Count(_ context.Context, selector string) (int, error) {
	return len(p.root.queryAll(selector)), nil
}

func (p *fakePage) URL() string { return p.url }

// fakeElement реализует Element поверх одного узла.
type fakeElement struct {
	node *fakeNode
	page *fakePage
}

func (e *fakeElement) Probe(_ context.Context) (*Probe, error) {
	n := e.node
	p := &Probe{
		Tag:         n.tag,
		Type:        n.typeOf(),
		ID:          n.attr("id"),
		Name:        n.attr("name"),
		Classes:     n.classes(),
		Text:        n.text,
		Value:       n.attr("value"),
		Placeholder: n.attr("placeholder"),
		For:         n.attr("for"),
		Displayed:   n.isDisplayed(),
		Visible:     n.isVisible(),
		Width:       n.width,
		Height:      n.height,
	}
	for cur := n; cur != nil && cur.tag != "body" && len(p.Path) < 6; cur = cur.parent {
		node := PathNode{Tag: cur.tag, ID: cur.attr("id")}
		if cls := cur.classes(); len(cls) > 0 {
			node.FirstClass = cls[0]
		}
		if parent := cur.parent; parent != nil {
			node.SiblingCount = len(parent.children)
			for i, sib := range parent.children {
				if sib == cur {
					node.NthIndex = i + 1
				}
			}
		}
		p.Path = append(p.Path, node)
	}
	return p, nil
}

func (e *fakeElement) Query(_ context.Context, selector string) (Element, error) {
	all := e.node.queryAll(selector)
	if len(all) == 0 {
		return nil, nil
	}
	return &fakeElement{node: all[0], page: e.page}, nil
}

func (e *fakeElement) QueryAll(_ context.Context, selector string) ([]Element, error) {
	all := e.node.queryAll(selector)
	out := make([]Element, len(all))
	for i, n := range all {
		out[i] = &fakeElement{node: n, page: e.page}
	}
	return out, nil
}

func (e *fakeElement) NextSibling(_ context.Context) (Element, error) {
	parent := e.node.parent
	if parent == nil {
		return nil, nil
	}
	for i, sib := range parent.children {
		if sib == e.node && i+1 < len(parent.children) {
			return &fakeElement{node: parent.children[i+1], page: e.page}, nil
		}
	}
	return nil, nil
}

func (e *fakeElement) Fill(_ context.Context, value string) error {
	e.node.filled = value
	return nil
}

func (e *fakeElement) Click(_ context.Context) error {
	e.node.clicked++
	return nil
}

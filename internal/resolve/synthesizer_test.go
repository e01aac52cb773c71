package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeOf(t *testing.T, page *fakePage, selector string) (*Probe, Element) {
	t.Helper()
	elm, err := page.Query(context.Background(), selector)
	require.NoError(t, err)
	require.NotNil(t, elm)
	p, err := elm.Probe(context.Background())
	require.NoError(t, err)
	return p, elm
}

func TestSynthesizePrefersID(t *testing.T) {
	page := newFakePage(
		el("input", map[string]string{"id": "login", "name": "login", "class": "field"}),
	)
	p, _ := probeOf(t, page, "input")
	assert.Equal(t, "#login", Synthesize(context.Background(), page, p))
}

func TestSynthesizeName(t *testing.T) {
	page := newFakePage(
		el("input", map[string]string{"name": "q", "class": "field"}),
	)
	p, _ := probeOf(t, page, "input")
	assert.Equal(t, `[name="q"]`, Synthesize(context.Background(), page, p))
}

func TestSynthesizeUniqueClass(t *testing.T) {
	page := newFakePage(
		el("input", map[string]string{"class": "field primary-input"}),
		el("input", map[string]string{"class": "field"}),
	)
	p, _ := probeOf(t, page, ".primary-input")
	// "field" встречается дважды, пропускается; "primary-input" уникален.
	assert.Equal(t, ".primary-input", Synthesize(context.Background(), page, p))
}

func TestSynthesizeStructuralPath(t *testing.T) {
	target := el("input", nil)
	page := newFakePage(
		el("div", map[string]string{"class": "wrap"},
			el("form", nil,
				el("div", nil),
				el("div", nil, target),
			),
		),
	)
	p, _ := probeOf(t, page, "input")
	got := Synthesize(context.Background(), page, p)
	assert.Equal(t, "div.wrap > form > div:nth-child(2) > input", got)
}

func TestSynthesizeStopsAtAncestorID(t *testing.T) {
	page := newFakePage(
		el("div", map[string]string{"id": "login-form"},
			el("span", nil,
				el("input", nil),
			),
		),
	)
	p, _ := probeOf(t, page, "input")
	assert.Equal(t, "#login-form > span > input", Synthesize(context.Background(), page, p))
}

func TestSynthesizeCapsDepth(t *testing.T) {
	// Семь уровней вложенности: в селектор попадают только пять.
	target := el("input", nil)
	cur := target
	for i := 0; i < 6; i++ {
		cur = el("div", nil, cur)
	}
	page := newFakePage(cur)

	p, _ := probeOf(t, page, "input")
	got := Synthesize(context.Background(), page, p)
	assert.Equal(t, "div > div > div > div > input", got)
}

func TestSynthesizeIdempotent(t *testing.T) {
	page := newFakePage(
		el("div", map[string]string{"class": "wrap"},
			elText("button", map[string]string{"class": "field"}, "Go"),
			elText("button", map[string]string{"class": "field"}, "Stop"),
		),
	)
	p, _ := probeOf(t, page, "button")
	first := Synthesize(context.Background(), page, p)
	second := Synthesize(context.Background(), page, p)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

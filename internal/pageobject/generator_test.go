package pageobject

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

// stubElement отдает заранее заданный Probe; остальное генератору не нужно.
type stubElement struct {
	probe *resolve.Probe
}

func (s *stubElement) Probe(context.Context) (*resolve.Probe, error) { return s.probe, nil }
func (s *stubElement) Query(context.Context, string) (resolve.Element, error) {
	return nil, nil
}
func (s *stubElement) QueryAll(context.Context, string) ([]resolve.Element, error) {
	return nil, nil
}
func (s *stubElement) NextSibling(context.Context) (resolve.Element, error) { return nil, nil }
func (s *stubElement) Fill(context.Context, string) error                   { return nil }
func (s *stubElement) Click(context.Context) error                          { return nil }

type stubPage struct {
	elements []resolve.Element
	url      string
}

func (p *stubPage) Query(context.Context, string) (resolve.Element, error) { return nil, nil }
func (p *stubPage) QueryAll(context.Context, string) ([]resolve.Element, error) {
	return p.elements, nil
}
func (p *stubPage) Count(context.Context, string) (int, error) { return 0, nil }
func (p *stubPage) URL() string                                { return p.url }

func visible(p resolve.Probe) *resolve.Probe {
	p.Displayed = true
	p.Visible = true
	p.Width = 120
	p.Height = 30
	return &p
}

func loginPage() *stubPage {
	return &stubPage{
		url: "https://shop.test/login",
		elements: []resolve.Element{
			&stubElement{probe: visible(resolve.Probe{Tag: "input", Type: "email", ID: "email"})},
			&stubElement{probe: visible(resolve.Probe{Tag: "input", Type: "password", ID: "password"})},
			&stubElement{probe: visible(resolve.Probe{Tag: "button", Type: "submit", ID: "login-btn", Text: "Login"})},
			&stubElement{probe: &resolve.Probe{Tag: "input", Type: "hidden", ID: "csrf"}},
		},
	}
}

func TestGenerateClassifiesLoginForm(t *testing.T) {
	g := NewGenerator(nil)
	po, err := g.Generate(context.Background(), loginPage(), "login")
	require.NoError(t, err)

	assert.Equal(t, "https://shop.test/login", po.URLPattern)
	// Скрытое csrf-поле не попадает в описатель.
	require.Len(t, po.Elements, 3)

	email := po.Elements["email"]
	assert.Equal(t, "#email", email.Selector)
	assert.Equal(t, resolve.TypeUsername, email.Type)
	assert.GreaterOrEqual(t, email.Confidence, classifyThreshold)

	pw := po.Elements["password"]
	assert.Equal(t, resolve.TypePassword, pw.Type)

	btn := po.Elements["login_btn"]
	assert.Equal(t, resolve.TypeLoginButton, btn.Type)

	assert.Contains(t, po.Actions, "login")
}

func TestGenerateNamesAreUnique(t *testing.T) {
	page := &stubPage{
		url: "https://shop.test",
		elements: []resolve.Element{
			&stubElement{probe: visible(resolve.Probe{Tag: "input", Name: "q"})},
			&stubElement{probe: visible(resolve.Probe{Tag: "input", Name: "q"})},
		},
	}
	g := NewGenerator(nil)
	po, err := g.Generate(context.Background(), page, "search")
	require.NoError(t, err)

	assert.Len(t, po.Elements, 2)
	assert.Contains(t, po.Elements, "q")
	assert.Contains(t, po.Elements, "q_2")
}

func TestGenerateLowScoreIsOther(t *testing.T) {
	page := &stubPage{
		url: "https://shop.test",
		elements: []resolve.Element{
			&stubElement{probe: visible(resolve.Probe{Tag: "a", ID: "promo", Text: "Акция"})},
		},
	}
	g := NewGenerator(nil)
	po, err := g.Generate(context.Background(), page, "home")
	require.NoError(t, err)

	require.Contains(t, po.Elements, "promo")
	assert.Equal(t, "other", po.Elements["promo"].Type)
	assert.Empty(t, po.Actions)
}

func TestExportWritesJSON(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(nil)
	po, err := g.Generate(context.Background(), loginPage(), "login")
	require.NoError(t, err)

	path, err := g.Export(po, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "login.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded PageObject
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, po.PageName, decoded.PageName)
	assert.Len(t, decoded.Elements, 3)
}

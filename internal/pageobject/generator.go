// Package pageobject строит JSON описатели страниц: каждому
// интерактивному элементу подбирается имя, устойчивый селектор и
// семантический тип с уверенностью. Описатели складываются на диск и
// переиспользуются как fallback-селекторы в следующих прогонах.
package pageobject

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

// interactiveSelector покрывает элементы, с которыми взаимодействуют шаги теста.
const interactiveSelector = "input, button, select, textarea, a"

// classifyThreshold — минимальная отчетная уверенность, при которой
// элементу присваивается семантический тип, а не "other".
const classifyThreshold = 50

var builtinTypes = []string{
	resolve.TypeUsername,
	resolve.TypePassword,
	resolve.TypeLoginButton,
	resolve.TypeSuccessIndicator,
}

type ElementDescriptor struct {
	Selector   string  `json:"selector"`
	Type       string  `json:"type"`
	Confidence int     `json:"confidence"`
	Tag        string  `json:"tag"`
	Text       string  `json:"text,omitempty"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

type PageObject struct {
	PageName    string                       `json:"page_name"`
	URLPattern  string                       `json:"url_pattern"`
	GeneratedAt time.Time                    `json:"generated_at"`
	Elements    map[string]ElementDescriptor `json:"elements"`
	Actions     []string                     `json:"actions"`
}

type Generator struct {
	log *zap.Logger
}

func NewGenerator(log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{log: log}
}

// Generate анализирует текущую страницу и собирает описатель.
// Невидимые элементы пропускаются: их нет смысла переиспользовать.
func (g *Generator) Generate(ctx context.Context, page resolve.Page, pageName string) (*PageObject, error) {
	els, err := page.QueryAll(ctx, interactiveSelector)
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования страницы: %w", err)
	}

	po := &PageObject{
		PageName:    pageName,
		URLPattern:  page.URL(),
		GeneratedAt: time.Now(),
		Elements:    make(map[string]ElementDescriptor),
	}

	for i, el := range els {
		probe, err := el.Probe(ctx)
		if err != nil {
			continue
		}
		if !probe.IsVisible() {
			continue
		}

		elemType, confidence := classify(probe)
		desc := ElementDescriptor{
			Selector:   resolve.Synthesize(ctx, page, probe),
			Type:       elemType,
			Confidence: confidence,
			Tag:        probe.Tag,
			Text:       probe.Text,
			Width:      probe.Width,
			Height:     probe.Height,
		}
		po.Elements[uniqueName(po.Elements, elementName(probe, i))] = desc
	}

	po.Actions = deriveActions(po.Elements)

	g.log.Info("описатель страницы собран",
		zap.String("page", pageName),
		zap.Int("elements", len(po.Elements)),
		zap.Strings("actions", po.Actions))

	return po, nil
}

// Export пишет описатель в <dir>/<pageName>.json.
func (g *Generator) Export(po *PageObject, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ошибка создания директории: %w", err)
	}

	data, err := json.MarshalIndent(po, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, po.PageName+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("ошибка записи описателя: %w", err)
	}
	return path, nil
}

// classify выбирает семантический тип с наибольшей отчетной
// уверенностью. Ниже порога элемент остается "other".
func classify(p *resolve.Probe) (string, int) {
	bestType := "other"
	bestScore := 0
	for _, et := range builtinTypes {
		if score := resolve.ReportScore(p, et); score > bestScore {
			bestScore = score
			bestType = et
		}
	}
	if bestScore < classifyThreshold {
		return "other", bestScore
	}
	return bestType, bestScore
}

// elementName придумывает читаемое имя: id, затем name, затем tag с
// номером.
func elementName(p *resolve.Probe, index int) string {
	if p.ID != "" {
		return sanitizeName(p.ID)
	}
	if p.Name != "" {
		return sanitizeName(p.Name)
	}
	if p.Text != "" && len(p.Text) <= 30 {
		return sanitizeName(p.Tag + "_" + p.Text)
	}
	return fmt.Sprintf("%s_%d", p.Tag, index+1)
}

func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

func uniqueName(existing map[string]ElementDescriptor, name string) string {
	if name == "" {
		name = "element"
	}
	if _, taken := existing[name]; !taken {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
	}
}

// deriveActions выводит действия, доступные на странице, из набора
// распознанных типов.
func deriveActions(elements map[string]ElementDescriptor) []string {
	have := map[string]bool{}
	for _, d := range elements {
		have[d.Type] = true
	}

	var actions []string
	if have[resolve.TypeUsername] && have[resolve.TypePassword] && have[resolve.TypeLoginButton] {
		actions = append(actions, "login")
	}
	if have[resolve.TypeSuccessIndicator] {
		actions = append(actions, "verify_success")
	}
	return actions
}

package resolve

import (
	"context"
	"fmt"
	"strings"
)

// maxPathDepth ограничивает структурный селектор, чтобы он оставался
// читаемым.
const maxPathDepth = 5

// Synthesize строит переиспользуемый CSS селектор для элемента,
// найденного нестабильным способом (по тексту, label, скорингу).
// Приоритет: #id → [name=...] → уникальный класс → структурный путь.
// Селектор рекомендательный: уникальность гарантируется только для
// первых трех правил.
func Synthesize(ctx context.Context, page Page, p *Probe) string {
	if p.ID != "" {
		return "#" + p.ID
	}
	if p.Name != "" {
		return fmt.Sprintf(`[name="%s"]`, p.Name)
	}

	for _, cls := range p.Classes {
		if cls == "" {
			continue
		}
		n, err := page.Count(ctx, "."+cls)
		if err == nil && n == 1 {
			return "." + cls
		}
	}

	return structuralPath(p)
}

// structuralPath собирает путь tag[.firstClass][:nth-child(i)] снизу
// вверх, останавливаясь на предке с id. Не больше maxPathDepth уровней,
// сегменты соединяются " > " от корня к элементу.
func structuralPath(p *Probe) string {
	var segments []string // от элемента вверх

	for i, node := range p.Path {
		if i >= maxPathDepth {
			break
		}
		// Предок с id обрывает подъем: он и так уникален.
		if i > 0 && node.ID != "" {
			segments = append(segments, "#"+node.ID)
			break
		}

		seg := node.Tag
		if node.FirstClass != "" {
			seg += "." + node.FirstClass
		}
		if node.SiblingCount > 1 && node.NthIndex > 0 {
			seg += fmt.Sprintf(":nth-child(%d)", node.NthIndex)
		}
		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		return p.Tag
	}

	// Разворот в порядок корень → элемент.
	for l, r := 0, len(segments)-1; l < r; l, r = l+1, r-1 {
		segments[l], segments[r] = segments[r], segments[l]
	}
	return strings.Join(segments, " > ")
}

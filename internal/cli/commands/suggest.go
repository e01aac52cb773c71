package commands

import (
	"context"
	"fmt"

	"github.com/rohitsharma007/automation-script-generator/internal/cli/ui"
	"github.com/rohitsharma007/automation-script-generator/internal/llm"
)

// SuggestHandler генерирует шаги тест-кейса из свободного описания
type SuggestHandler struct {
	oracle llm.Oracle
}

func NewSuggestHandler(oracle llm.Oracle) *SuggestHandler {
	return &SuggestHandler{
		oracle: oracle,
	}
}

// Suggest печатает шаги, предложенные оракулом
func (h *SuggestHandler) Suggest(ctx context.Context, description string) {
	if h.oracle == nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " Оракул не инициализирован" + ui.ColorReset)
		return
	}

	fmt.Println(ui.ColorCyan + ui.IconRobot + " Генерация шагов..." + ui.ColorReset)
	steps, err := h.oracle.SuggestSteps(ctx, description)
	if err != nil {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка:"+ui.ColorReset+" %v\n", err)
		return
	}

	fmt.Println(ui.ColorGreen + ui.IconCheckmark + " Предложенные шаги:" + ui.ColorReset)
	for _, step := range steps {
		fmt.Printf("  "+ui.ColorBold+"%d."+ui.ColorReset+" "+ui.ColorCyan+"%-8s"+ui.ColorReset+" %s\n",
			step.StepNo, step.Action, step.Description)
		if step.ElementType != "" {
			fmt.Printf("     "+ui.ColorGray+"Элемент:"+ui.ColorReset+" %s\n", step.ElementType)
		}
		if step.Selector != "" {
			fmt.Printf("     "+ui.ColorGray+"Селектор:"+ui.ColorReset+" %s\n", step.Selector)
		}
		if step.Value != "" {
			fmt.Printf("     "+ui.ColorGray+"Значение:"+ui.ColorReset+" %s\n", step.Value)
		}
	}
	fmt.Println()
}

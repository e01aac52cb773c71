package commands

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/cli/ui"
	"github.com/rohitsharma007/automation-script-generator/internal/database"
)

// ShowHandler обрабатывает команды просмотра истории прогонов
type ShowHandler struct {
	repo *database.RunRepository
	log  *zap.Logger
}

func NewShowHandler(repo *database.RunRepository, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		repo: repo,
		log:  log,
	}
}

// List выводит список прогонов
func (h *ShowHandler) List() {
	if h.repo == nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " База не подключена, история недоступна" + ui.ColorReset)
		return
	}
	runs, err := h.repo.ListRuns(50, 0)
	if err != nil {
		h.log.Error("Ошибка чтения прогонов", zap.Error(err))
		fmt.Println(ui.ColorRed + ui.IconCross + " Ошибка чтения прогонов" + ui.ColorReset)
		return
	}
	fmt.Println("\n" + ui.ColorBold + ui.IconList + " Список прогонов:" + ui.ColorReset)
	fmt.Println()
	for _, r := range runs {
		icon, color, text := ui.FormatStatus(r.Status)
		fmt.Printf("  "+ui.ColorBold+"#%d"+ui.ColorReset+" %s%s %s"+ui.ColorReset+"\n", r.ID, color, icon, text)
		fmt.Printf("  "+ui.ColorGray+"└─"+ui.ColorReset+" %s %s\n", r.TestCaseID, ui.ColorGray+r.TargetURL+ui.ColorReset)
		fmt.Println()
	}
}

// Show выводит детали прогона со всеми шагами
func (h *ShowHandler) Show(idStr string) {
	if h.repo == nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " База не подключена, история недоступна" + ui.ColorReset)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " Неверный ID прогона" + ui.ColorReset)
		return
	}
	run, err := h.repo.GetRunByID(uint(id))
	if err != nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " Прогон не найден" + ui.ColorReset)
		return
	}

	_, _, statusText := ui.FormatStatus(run.Status)

	fmt.Printf("\n"+ui.ColorBold+"=== Прогон #%d ==="+ui.ColorReset+"\n", run.ID)
	fmt.Printf(ui.ColorCyan+ui.IconDocument+" Тест-кейс:"+ui.ColorReset+" %s\n", run.TestCaseID)
	fmt.Printf(ui.ColorCyan+ui.IconGlobe+" Адрес:"+ui.ColorReset+" %s\n", run.TargetURL)
	fmt.Printf(ui.ColorCyan+ui.IconChart+" Статус:"+ui.ColorReset+" %s\n", statusText)
	fmt.Printf(ui.ColorCyan+ui.IconTime+" Создан:"+ui.ColorReset+" %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	if run.ResultSummary != "" {
		fmt.Printf(ui.ColorCyan+ui.IconChart+" Итог:"+ui.ColorReset+" %s\n", run.ResultSummary)
	}

	steps, err := h.repo.ListStepResults(run.ID)
	if err != nil {
		h.log.Error("Ошибка получения шагов", zap.Error(err))
		fmt.Println(ui.ColorRed + ui.IconCross + " Ошибка получения шагов" + ui.ColorReset)
		return
	}

	if len(steps) > 0 {
		fmt.Printf("\n"+ui.ColorYellow+ui.IconList+" Шаги (%d):"+ui.ColorReset+"\n", len(steps))
		for _, step := range steps {
			icon, color, _ := ui.FormatStatus(step.Status)
			fmt.Printf("\n"+ui.ColorBold+"[Шаг %d]"+ui.ColorReset+" %s%s"+ui.ColorReset+" "+ui.ColorCyan+"%s"+ui.ColorReset+"\n",
				step.StepNo, color, icon, step.Action)
			if step.Selector != "" {
				fmt.Printf("  "+ui.ColorGray+"Селектор:"+ui.ColorReset+" %s\n", step.Selector)
			}
			if step.Strategy != "" {
				fmt.Printf("  "+ui.ColorGray+"Стратегия:"+ui.ColorReset+" %s (уверенность %d)\n", step.Strategy, step.Confidence)
			}
			if step.Result != "" {
				fmt.Printf("  "+ui.ColorGray+"Результат:"+ui.ColorReset+" %s\n", step.Result)
			}
		}
	} else {
		fmt.Println("\n" + ui.ColorGray + "Шаги не найдены" + ui.ColorReset)
	}
	fmt.Println()
}

// Detections выводит историю найденных селекторов
func (h *ShowHandler) Detections(elementType string) {
	if h.repo == nil {
		fmt.Println(ui.ColorRed + ui.IconCross + " База не подключена, история недоступна" + ui.ColorReset)
		return
	}
	recs, err := h.repo.ListDetections(elementType, 50)
	if err != nil {
		h.log.Error("Ошибка чтения детекций", zap.Error(err))
		fmt.Println(ui.ColorRed + ui.IconCross + " Ошибка чтения детекций" + ui.ColorReset)
		return
	}
	fmt.Println("\n" + ui.ColorBold + ui.IconTarget + " Найденные селекторы:" + ui.ColorReset)
	for _, rec := range recs {
		fmt.Printf("  "+ui.ColorCyan+"%-16s"+ui.ColorReset+" %s "+ui.ColorGray+"(%s, уверенность %d)"+ui.ColorReset+"\n",
			rec.ElementType, rec.Selector, rec.Strategy, rec.Confidence)
	}
	fmt.Println()
}

package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/browser"
	"github.com/rohitsharma007/automation-script-generator/internal/cli/ui"
	"github.com/rohitsharma007/automation-script-generator/internal/config"
	"github.com/rohitsharma007/automation-script-generator/internal/database"
	"github.com/rohitsharma007/automation-script-generator/internal/runner"
)

// RunHandler обрабатывает запуск тест-кейсов
type RunHandler struct {
	cfg  *config.Cfg
	repo *database.RunRepository
	log  *zap.Logger
}

func NewRunHandler(cfg *config.Cfg, repo *database.RunRepository, log *zap.Logger) *RunHandler {
	return &RunHandler{
		cfg:  cfg,
		repo: repo,
		log:  log,
	}
}

// Run загружает тест-кейс из JSON файла и исполняет его
func (h *RunHandler) Run(ctx context.Context, path string) {
	tc, err := runner.LoadTestCase(path)
	if err != nil {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Ошибка:"+ui.ColorReset+" %v\n", err)
		return
	}

	fmt.Printf(ui.ColorCyan+ui.IconPlay+" Запуск тест-кейса %s"+ui.ColorReset+" (%d шагов)\n",
		tc.TestCaseID, len(tc.TestSteps))

	headless := tc.Headless || h.cfg.Browser.Headless
	br := browser.New(browser.Config{
		Headless:     headless,
		UserDataDir:  h.cfg.Browser.UserDataDir,
		BrowsersPath: h.cfg.Browser.BrowsersPath,
		Display:      h.cfg.Browser.Display,
	})
	r := runner.New(br, h.repo, h.log, runner.Config{
		PageObjectDir: h.cfg.Resolver.PageObjectDir,
	})

	report, err := r.Run(ctx, tc)
	if err != nil {
		fmt.Printf(ui.ColorRed+ui.IconCross+" Прогон прерван:"+ui.ColorReset+" %v\n", err)
		return
	}

	h.printReport(report)
}

func (h *RunHandler) printReport(report *runner.RunReport) {
	icon, color, text := ui.FormatStatus(report.Status)
	fmt.Println()
	fmt.Printf(ui.ColorBold+"Прогон #%d"+ui.ColorReset+" %s%s %s"+ui.ColorReset+
		ui.ColorGray+" за %s"+ui.ColorReset+"\n", report.RunID, color, icon, text, report.Duration.Round(time.Millisecond))

	for _, step := range report.Steps {
		sIcon, sColor, _ := ui.FormatStatus(step.Status)
		fmt.Printf("  %s%s"+ui.ColorReset+" [%d] %s\n", sColor, sIcon, step.Step.StepNo, step.Step.Description)
		if step.Selector != "" {
			fmt.Printf("    "+ui.ColorGray+"└─ %s (стратегия: %s, уверенность: %d)"+ui.ColorReset+"\n",
				step.Selector, step.Strategy, step.Confidence)
		}
		if step.Detail != "" {
			fmt.Printf("    "+ui.ColorGray+"└─ %s"+ui.ColorReset+"\n", step.Detail)
		}
	}
	fmt.Println()
}

// Package runner исполняет тест-кейсы: разбирает шаги, находит
// элементы через движок разрешения, управляет браузером и пишет
// историю прогона в базу.
package runner

import (
	"time"

	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/browser"
	"github.com/rohitsharma007/automation-script-generator/internal/database"
	"github.com/rohitsharma007/automation-script-generator/internal/nlp"
	"github.com/rohitsharma007/automation-script-generator/internal/pageobject"
	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
	"github.com/rohitsharma007/automation-script-generator/internal/sanitizer"
)

// TestCase — тест-кейс из JSON файла. Формат совместим с конфигами
// вида sample.json: шаги на естественном языке плюс тестовые данные.
type TestCase struct {
	TestCaseID string   `json:"test_case_id"`
	TestSteps  []string `json:"test_steps"`
	TestData   TestData `json:"test_data"`
	Headless   bool     `json:"headless"`
}

type TestData struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// StepOutcome — итог одного шага для отчета.
type StepOutcome struct {
	Step       nlp.TestStep
	Selector   string
	Confidence int
	Strategy   string
	Status     string // passed / failed / skipped
	Detail     string
}

// RunReport — итог прогона.
type RunReport struct {
	RunID    uint
	Status   string
	Steps    []StepOutcome
	Duration time.Duration
}

type Config struct {
	MaxRetries    int
	RetryDelay    time.Duration
	PageObjectDir string
}

type Runner struct {
	browser   browser.Browser
	catalog   *resolve.Catalog
	repo      *database.RunRepository // может быть nil: прогон без истории
	sanitizer *sanitizer.DataSanitizer
	pages     *pageobject.Generator
	log       *zap.Logger
	cfg       Config
}

func New(b browser.Browser, repo *database.RunRepository, log *zap.Logger, cfg Config) *Runner {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		browser:   b,
		catalog:   resolve.DefaultCatalog(),
		repo:      repo,
		sanitizer: sanitizer.New(),
		pages:     pageobject.NewGenerator(log),
		log:       log,
		cfg:       cfg,
	}
}

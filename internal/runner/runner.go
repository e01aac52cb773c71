package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/browser"
	"github.com/rohitsharma007/automation-script-generator/internal/database"
	"github.com/rohitsharma007/automation-script-generator/internal/nlp"
	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

// LoadTestCase читает тест-кейс из JSON файла.
func LoadTestCase(path string) (*TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения тест-кейса: %w", err)
	}

	var tc TestCase
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("ошибка разбора тест-кейса: %w", err)
	}
	if tc.TestCaseID == "" {
		return nil, fmt.Errorf("test_case_id не задан")
	}
	if len(tc.TestSteps) == 0 {
		return nil, fmt.Errorf("тест-кейс не содержит шагов")
	}
	return &tc, nil
}

// Run исполняет тест-кейс от запуска браузера до вердикта. Первый
// упавший шаг останавливает прогон, оставшиеся шаги помечаются
// пропущенными.
func (r *Runner) Run(ctx context.Context, tc *TestCase) (*RunReport, error) {
	start := time.Now()

	run := &database.TestRun{
		TestCaseID: tc.TestCaseID,
		TargetURL:  tc.TestData.URL,
		Status:     "running",
	}
	if r.repo != nil {
		if err := r.repo.CreateRun(run); err != nil {
			r.log.Warn("не удалось создать запись прогона", zap.Error(err))
		}
	}

	if err := r.browser.Launch(ctx); err != nil {
		r.finishRun(run, "failed", fmt.Sprintf("браузер не запустился: %v", err))
		return nil, fmt.Errorf("ошибка запуска браузера: %w", err)
	}
	defer func() {
		if err := r.browser.Close(); err != nil {
			r.log.Warn("ошибка закрытия браузера", zap.Error(err))
		}
	}()

	var opts []resolve.Option
	if r.repo != nil {
		opts = append(opts, resolve.WithSink(database.NewDetectionSink(r.repo)))
	}
	session := resolve.NewSession(r.browser.Page(), r.catalog, r.log, opts...)

	report := &RunReport{RunID: run.ID, Status: "passed"}
	failed := false

	for i, raw := range tc.TestSteps {
		step := nlp.ParseStep(raw)
		step.StepNo = i + 1

		var outcome StepOutcome
		if failed {
			outcome = StepOutcome{Step: step, Status: "skipped", Detail: "прогон остановлен ранее"}
		} else {
			outcome = r.executeStep(ctx, session, step, tc)
			if outcome.Status == "failed" {
				failed = true
			}
		}

		report.Steps = append(report.Steps, outcome)
		r.persistStep(run.ID, outcome)
	}

	summary := r.summarize(report)
	if failed {
		report.Status = "failed"
	}
	report.Duration = time.Since(start)
	r.finishRun(run, report.Status, summary)

	r.log.Info("прогон завершен",
		zap.String("test_case", tc.TestCaseID),
		zap.String("status", report.Status),
		zap.Duration("duration", report.Duration))
	return report, nil
}

func (r *Runner) executeStep(ctx context.Context, session *resolve.Session, step nlp.TestStep, tc *TestCase) StepOutcome {
	outcome := StepOutcome{Step: step, Status: "passed"}

	var err error
	switch step.Action {
	case nlp.ActionNavigate:
		err = r.doNavigate(ctx, step, tc)
	case nlp.ActionFill:
		err = r.doFill(ctx, session, step, tc, &outcome)
	case nlp.ActionClick:
		err = r.doClick(ctx, session, step, &outcome)
	case nlp.ActionSelect:
		err = r.doSelect(ctx, session, step, &outcome)
	case nlp.ActionVerify:
		err = r.verifySuccess(ctx, session, step, &outcome)
	case nlp.ActionWait:
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-time.After(time.Duration(step.WaitSeconds) * time.Second):
		}
	default:
		outcome.Status = "skipped"
		outcome.Detail = fmt.Sprintf("непонятный шаг: %s", step.Description)
		return outcome
	}

	if err != nil {
		outcome.Status = "failed"
		outcome.Detail = r.sanitizer.Sanitize(err.Error())
		r.log.Error("шаг провален",
			zap.Int("step_no", step.StepNo),
			zap.String("action", step.Action),
			zap.String("detail", outcome.Detail))
	}
	return outcome
}

func (r *Runner) doNavigate(ctx context.Context, step nlp.TestStep, tc *TestCase) error {
	url := strings.ReplaceAll(step.Value, "{url}", tc.TestData.URL)
	if url == "" {
		url = tc.TestData.URL
	}
	if url == "" {
		return fmt.Errorf("шагу navigate не задан адрес")
	}

	err := retryAction(ctx, r.cfg.MaxRetries, r.cfg.RetryDelay, func() error {
		return r.browser.Navigate(ctx, url)
	})
	if err != nil {
		return err
	}

	r.exportPageObject(ctx, tc)
	return nil
}

// exportPageObject собирает описатель страницы после навигации.
// Ошибки здесь не валят прогон: описатель — побочный артефакт.
func (r *Runner) exportPageObject(ctx context.Context, tc *TestCase) {
	if r.cfg.PageObjectDir == "" {
		return
	}
	po, err := r.pages.Generate(ctx, r.browser.Page(), tc.TestCaseID)
	if err != nil {
		r.log.Warn("не удалось собрать описатель страницы", zap.Error(err))
		return
	}
	if _, err := r.pages.Export(po, r.cfg.PageObjectDir); err != nil {
		r.log.Warn("не удалось сохранить описатель страницы", zap.Error(err))
	}
}

func (r *Runner) doFill(ctx context.Context, session *resolve.Session, step nlp.TestStep, tc *TestCase, outcome *StepOutcome) error {
	value := stepValue(step, tc.TestData)
	if value == "" {
		return fmt.Errorf("шагу fill не задано значение")
	}

	if step.ElementType == "" && step.Selector != "" {
		return r.fillBySelector(ctx, step.Selector, value, outcome)
	}

	return retryAction(ctx, r.cfg.MaxRetries, r.cfg.RetryDelay, func() error {
		res, err := session.Resolve(ctx, step.ElementType, step.Selector)
		if err != nil {
			return err
		}
		outcome.Selector = res.Selector
		outcome.Confidence = res.Confidence
		outcome.Strategy = res.Strategy
		return res.Element.Fill(ctx, value)
	})
}

func (r *Runner) fillBySelector(ctx context.Context, selector, value string, outcome *StepOutcome) error {
	selector, err := prepareSelector(selector)
	if err != nil {
		return err
	}
	outcome.Selector = selector
	return retryAction(ctx, r.cfg.MaxRetries, r.cfg.RetryDelay, func() error {
		return r.browser.Fill(ctx, selector, value)
	})
}

func (r *Runner) doClick(ctx context.Context, session *resolve.Session, step nlp.TestStep, outcome *StepOutcome) error {
	if step.ElementType == "" && step.Selector != "" {
		selector, err := prepareSelector(step.Selector)
		if err != nil {
			return err
		}
		outcome.Selector = selector
		return retryAction(ctx, r.cfg.MaxRetries, r.cfg.RetryDelay, func() error {
			return r.browser.Click(ctx, selector)
		})
	}

	elementType := step.ElementType
	if elementType == "" {
		// "click the button" без уточнений — считаем кнопкой сабмита.
		elementType = resolve.TypeLoginButton
	}

	return retryAction(ctx, r.cfg.MaxRetries, r.cfg.RetryDelay, func() error {
		res, err := session.Resolve(ctx, elementType, step.Selector)
		if err != nil {
			return err
		}
		outcome.Selector = res.Selector
		outcome.Confidence = res.Confidence
		outcome.Strategy = res.Strategy
		return res.Element.Click(ctx)
	})
}

func (r *Runner) doSelect(ctx context.Context, session *resolve.Session, step nlp.TestStep, outcome *StepOutcome) error {
	selector := step.Selector
	if selector == "" {
		res, err := session.Resolve(ctx, step.ElementType, "")
		if err != nil {
			return err
		}
		selector = res.Selector
		outcome.Confidence = res.Confidence
		outcome.Strategy = res.Strategy
	}

	selector, err := prepareSelector(selector)
	if err != nil {
		return err
	}
	outcome.Selector = selector
	return retryAction(ctx, r.cfg.MaxRetries, r.cfg.RetryDelay, func() error {
		return r.browser.Select(ctx, selector, step.Value)
	})
}

// stepValue подставляет тестовые данные в значение шага: плейсхолдеры
// {username}/{password}/{url}, либо данные по типу элемента, когда
// значение в шаге не задано.
func stepValue(step nlp.TestStep, td TestData) string {
	v := step.Value
	v = strings.ReplaceAll(v, "{username}", td.Username)
	v = strings.ReplaceAll(v, "{password}", td.Password)
	v = strings.ReplaceAll(v, "{url}", td.URL)
	if v != "" {
		return v
	}

	switch step.ElementType {
	case resolve.TypeUsername:
		return td.Username
	case resolve.TypePassword:
		return td.Password
	}
	return ""
}

func prepareSelector(selector string) (string, error) {
	if err := browser.ValidateSelector(selector); err != nil {
		return "", err
	}
	normalized, _ := browser.NormalizeSelector(selector)
	return normalized, nil
}

func (r *Runner) persistStep(runID uint, outcome StepOutcome) {
	if r.repo == nil {
		return
	}
	err := r.repo.CreateStepResult(&database.StepResult{
		RunID:       runID,
		StepNo:      outcome.Step.StepNo,
		Action:      outcome.Step.Action,
		ElementType: outcome.Step.ElementType,
		Selector:    r.sanitizer.SanitizeSelector(outcome.Selector),
		Value:       r.sanitizer.MaskStepValue(outcome.Step.ElementType, outcome.Step.Value),
		Confidence:  outcome.Confidence,
		Strategy:    outcome.Strategy,
		Status:      outcome.Status,
		Result:      outcome.Detail,
	})
	if err != nil {
		r.log.Warn("не удалось сохранить результат шага", zap.Error(err))
	}
}

func (r *Runner) finishRun(run *database.TestRun, status, summary string) {
	if r.repo == nil || run.ID == 0 {
		return
	}
	if err := r.repo.UpdateRunStatus(run.ID, status, summary); err != nil {
		r.log.Warn("не удалось обновить статус прогона", zap.Error(err))
	}
}

func (r *Runner) summarize(report *RunReport) string {
	passed, failedCount, skipped := 0, 0, 0
	for _, o := range report.Steps {
		switch o.Status {
		case "passed":
			passed++
		case "failed":
			failedCount++
		default:
			skipped++
		}
	}
	return fmt.Sprintf("шагов: %d, успешно: %d, провалено: %d, пропущено: %d",
		len(report.Steps), passed, failedCount, skipped)
}

package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

func (b *PlaywrightBrowser) WaitForSelector(ctx context.Context, selector string) error {
	page := b.getPage()
	if page == nil {
		return fmt.Errorf("браузер не запущен")
	}

	// Валидируем селектор (проверяем, что это не URL)
	if err := ValidateSelector(selector); err != nil {
		return fmt.Errorf("невалидный селектор: %w", err)
	}

	// Нормализуем селектор (преобразуем :contains() в :has-text())
	if normalized, changed := NormalizeSelector(selector); changed {
		selector = normalized
	}

	opts := playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(b.cfg.Timeout.Milliseconds())),
	}

	_, err := page.WaitForSelector(selector, opts)
	return err
}

func (b *PlaywrightBrowser) WaitForLoadState(ctx context.Context, state string) error {
	page := b.getPage()
	if page == nil {
		return fmt.Errorf("браузер не запущен")
	}

	var loadState *playwright.LoadState
	switch strings.ToLower(state) {
	case "load":
		loadState = playwright.LoadStateLoad
	case "domcontentloaded":
		loadState = playwright.LoadStateDomcontentloaded
	case "networkidle":
		loadState = playwright.LoadStateNetworkidle
	default:
		loadState = playwright.LoadStateLoad
	}

	opts := playwright.PageWaitForLoadStateOptions{
		State:   loadState,
		Timeout: playwright.Float(float64(b.cfg.Timeout.Milliseconds())),
	}

	return page.WaitForLoadState(opts)
}

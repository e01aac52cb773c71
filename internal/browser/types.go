// Package browser оборачивает playwright и реализует страничный
// интерфейс resolve.Page поверх живого браузера.
package browser

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/rohitsharma007/automation-script-generator/internal/resolve"
)

type Browser interface {
	Launch(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Page() resolve.Page
	Click(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector, text string) error
	Select(ctx context.Context, selector, value string) error
	CurrentURL() (string, error)
	Title() (string, error)
	WaitForSelector(ctx context.Context, selector string) error
	WaitForLoadState(ctx context.Context, state string) error
	Close() error
}

type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	cfg     Config
	mu      sync.RWMutex
}

type Config struct {
	Headless        bool
	UserDataDir     string
	BrowsersPath    string
	Display         string
	Timeout         time.Duration
	NavigateTimeout time.Duration
	ActionTimeout   time.Duration
}

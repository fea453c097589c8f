package render

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightLauncher launches one headless Chromium per Launch from a
// shared driver. Stop the driver once the run is over.
type PlaywrightLauncher struct {
	pw   *playwright.Playwright
	opts Options
}

func NewPlaywright(opts Options) (*PlaywrightLauncher, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	return &PlaywrightLauncher{pw: pw, opts: opts.withDefaults()}, nil
}

func (l *PlaywrightLauncher) Launch(ctx context.Context) (Renderer, error) {
	browser, err := l.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args:     []string{"--no-sandbox", "--disable-dev-shm-usage"},
	})
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	return &playwrightRenderer{browser: browser, opts: l.opts}, nil
}

func (l *PlaywrightLauncher) Stop() error {
	return l.pw.Stop()
}

type playwrightRenderer struct {
	browser playwright.Browser
	opts    Options
}

func (r *playwrightRenderer) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := r.browser.NewPage()
	if err != nil {
		return "", fmt.Errorf("new page: %w", err)
	}
	defer func() { _ = page.Close() }()

	// Closing the page aborts whatever call is in flight.
	stop := context.AfterFunc(ctx, func() { _ = page.Close() })
	defer stop()

	timeoutMs := float64(r.opts.Timeout.Milliseconds())
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeoutMs),
	}); err != nil {
		return "", fmt.Errorf("playwright goto %s: %w", url, err)
	}

	for i := 0; i < r.opts.ScrollCount; i++ {
		if err := page.Keyboard().Press("PageDown"); err != nil {
			return "", fmt.Errorf("scroll %s: %w", url, err)
		}
		page.WaitForTimeout(float64(r.opts.ScrollPause.Milliseconds()))
	}

	content, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("page content %s: %w", url, err)
	}
	return content, nil
}

func (r *playwrightRenderer) Close() error {
	return r.browser.Close()
}

package render

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// ChromedpLauncher starts one headless Chrome per Launch.
type ChromedpLauncher struct {
	opts Options
}

func NewChromedp(opts Options) *ChromedpLauncher {
	return &ChromedpLauncher{opts: opts.withDefaults()}
}

func (l *ChromedpLauncher) Launch(ctx context.Context) (Renderer, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.DisableGPU,
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// Run with no actions starts the browser so launch errors surface here.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	return &chromedpRenderer{
		opts:   l.opts,
		ctx:    browserCtx,
		cancel: func() { cancelBrowser(); cancelAlloc() },
	}, nil
}

type chromedpRenderer struct {
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc
}

func (r *chromedpRenderer) Render(ctx context.Context, url string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(r.ctx, r.opts.Timeout)
	defer cancel()

	// Stop early if the caller's context goes away.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	tasks := chromedp.Tasks{
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	for i := 0; i < r.opts.ScrollCount; i++ {
		tasks = append(tasks,
			chromedp.KeyEvent(kb.PageDown),
			chromedp.Sleep(r.opts.ScrollPause),
		)
	}

	var pageHTML string
	tasks = append(tasks, chromedp.OuterHTML("html", &pageHTML, chromedp.ByQuery))

	if err := chromedp.Run(timeoutCtx, tasks); err != nil {
		return "", fmt.Errorf("chromedp render %s: %w", url, err)
	}
	return pageHTML, nil
}

func (r *chromedpRenderer) Close() error {
	r.cancel()
	return nil
}

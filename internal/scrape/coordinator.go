package scrape

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/logging"
	"jobscrape-engine/internal/render"
	"jobscrape-engine/internal/scrape/types"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var ErrInvalidLimit = errors.New("concurrency limit must be >= 1")

// Limiter is waited on before each navigation. *render.HostLimiter fits.
type Limiter interface {
	WaitURL(ctx context.Context, raw string) error
}

// Coordinator fetches URLs with a bounded number of live renderers and
// merges every page's listings into one slice.
type Coordinator struct {
	launcher  render.Launcher
	extractor types.Extractor
	limiter   Limiter
	log       logging.Logger
}

func NewCoordinator(launcher render.Launcher, extractor types.Extractor, limiter Limiter, log logging.Logger) *Coordinator {
	return &Coordinator{
		launcher:  launcher,
		extractor: extractor,
		limiter:   limiter,
		log:       log,
	}
}

// Run fetches every URL once (duplicates included) with at most limit
// renderer/extract cycles in flight and returns once all of them are done.
// A failing URL is logged and contributes nothing; it never stops the others.
// The returned slice is in completion order.
func (c *Coordinator) Run(ctx context.Context, urls []string, limit int) ([]domain.JobRecord, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	var (
		g   errgroup.Group
		sem = semaphore.NewWeighted(int64(limit))
		mu  sync.Mutex
		out []domain.JobRecord
	)

	for _, u := range urls {
		g.Go(func() error {
			res := c.process(ctx, sem, u)
			if res.Err != nil {
				c.log.Error("fetch failed", "extractor", c.extractor.Name(), "url", res.URL, "err", res.Err)
				return nil // best-effort: don't cancel siblings
			}

			mu.Lock()
			out = append(out, res.Records...)
			mu.Unlock()

			c.log.Info("processed", "url", res.URL, "listings", len(res.Records))
			return nil
		})
	}

	_ = g.Wait()
	return out, nil
}

func (c *Coordinator) process(ctx context.Context, sem *semaphore.Weighted, url string) (res types.FetchResult) {
	res.URL = url

	if err := sem.Acquire(ctx, 1); err != nil {
		res.Err = fmt.Errorf("acquire slot: %w", err)
		return res
	}
	defer sem.Release(1)

	defer func() {
		if r := recover(); r != nil {
			res.Records = nil
			res.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, url); err != nil {
			res.Err = fmt.Errorf("rate limit: %w", err)
			return res
		}
	}

	doc, err := c.render(ctx, url)
	if err != nil {
		res.Err = err
		return res
	}

	records, err := c.extractor.Parse(doc)
	if err != nil {
		res.Err = fmt.Errorf("parse: %w", err)
		return res
	}
	res.Records = records
	return res
}

// render owns the renderer for exactly one page; it is closed before
// extraction starts, whatever happens.
func (c *Coordinator) render(ctx context.Context, url string) (string, error) {
	r, err := c.launcher.Launch(ctx)
	if err != nil {
		return "", fmt.Errorf("launch renderer: %w", err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			c.log.Warn("renderer close failed", "url", url, "err", cerr)
		}
	}()

	c.log.Debug("rendering", "url", url)
	doc, err := r.Render(ctx, url)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return doc, nil
}

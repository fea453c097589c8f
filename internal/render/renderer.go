// Package render turns a URL into the HTML a browser would show after
// client-side rendering and a few scrolls.
package render

import (
	"context"
	"time"
)

// Renderer is a single browser instance owned by one fetch.
// Close must be called on every exit path.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
	Close() error
}

// Launcher creates a fresh Renderer per fetch.
type Launcher interface {
	Launch(ctx context.Context) (Renderer, error)
}

// Options tune how a page is loaded before its HTML is captured.
type Options struct {
	Timeout     time.Duration // per Render call
	ScrollCount int           // PageDown presses after load
	ScrollPause time.Duration // pause after each press
}

func DefaultOptions() Options {
	return Options{
		Timeout:     60 * time.Second,
		ScrollCount: 3,
		ScrollPause: 500 * time.Millisecond,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.ScrollCount < 0 {
		o.ScrollCount = 0
	}
	if o.ScrollPause < 0 {
		o.ScrollPause = 0
	}
	return o
}

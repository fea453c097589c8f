package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

func (v Validation) Error() string {
	return "config validation failed:\n- " + strings.Join(v.Errors, "\n- ")
}

// NormalizeAndValidate returns a normalized copy of cfg plus what is wrong
// with it. URLs are trimmed and blanks dropped; duplicates are kept since
// each one is fetched on its own.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	urls := make([]string, 0, len(cfg.URLs))
	for _, u := range cfg.URLs {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		urls = append(urls, u)
	}
	out.URLs = urls
	out.OutputPath = strings.TrimSpace(out.OutputPath)
	out.Renderer = strings.ToLower(strings.TrimSpace(out.Renderer))
	if out.Renderer == "" {
		out.Renderer = RendererChromedp
	}

	// ---- Validation rules ----

	if len(out.URLs) == 0 {
		res.addErr("urls must contain at least one URL")
	}
	seen := map[string]bool{}
	for i, u := range out.URLs {
		p, err := url.Parse(u)
		if err != nil || p.Scheme == "" || p.Host == "" {
			res.addErr("urls[%d] is not an absolute URL: %q", i, u)
		}
		if seen[u] {
			res.addWarn("urls[%d] is listed more than once and will be fetched again: %q", i, u)
		}
		seen[u] = true
	}

	if out.Concurrency < 1 {
		res.addErr("concurrency must be >= 1")
	} else if out.Concurrency > 10 {
		res.addWarn("concurrency is high (%d); every slot runs its own browser.", out.Concurrency)
	}

	if out.OutputPath == "" {
		res.addErr("output_path is required")
	}

	switch out.Renderer {
	case RendererChromedp, RendererPlaywright:
	default:
		res.addErr("renderer must be %q or %q, got %q", RendererChromedp, RendererPlaywright, out.Renderer)
	}

	if out.RenderTimeoutSeconds <= 0 {
		res.addErr("render_timeout_seconds must be > 0")
	}
	if out.ScrollCount < 0 {
		res.addErr("scroll_count must be >= 0")
	}
	if out.ScrollPauseMs < 0 {
		res.addErr("scroll_pause_ms must be >= 0")
	}

	if out.RequestsPerSecond < 0 {
		res.addErr("requests_per_second must be >= 0")
	} else if out.RequestsPerSecond == 0 {
		res.addWarn("requests_per_second is 0; navigations are not rate limited.")
	}
	if out.RequestsPerSecond > 0 && out.Burst < 1 {
		res.addErr("burst must be >= 1 when requests_per_second is set")
	}

	return out, res
}

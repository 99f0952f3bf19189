package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/common"
)

const defaultRenderWait = 3 * time.Second

// Renderer loads pages in a headless browser for targets that build
// their listings with JavaScript.
type Renderer struct {
	userAgent string
	waitTime  time.Duration
	logger    arbor.ILogger
}

// NewRenderer creates a renderer using the scrape configuration's
// user agent and render wait time.
func NewRenderer(config common.ScrapeConfig, logger arbor.ILogger) *Renderer {
	waitTime := config.RenderWaitTime.Duration
	if waitTime <= 0 {
		waitTime = defaultRenderWait
	}

	return &Renderer{
		userAgent: config.UserAgent,
		waitTime:  waitTime,
		logger:    logger,
	}
}

// Render navigates to the URL, waits for scripts to populate the page,
// and returns the resulting HTML.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	startTime := time.Now()

	allocatorOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(r.userAgent),
	)

	allocatorCtx, allocatorCancel := chromedp.NewExecAllocator(ctx, allocatorOpts...)
	defer allocatorCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx)
	defer browserCancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(r.waitTime), // Wait for JavaScript to render
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}

	r.logger.Debug().
		Str("url", url).
		Dur("duration", time.Since(startTime)).
		Int("html_length", len(html)).
		Msg("Page rendered")

	return html, nil
}

// Package fetch - browser.go provides headless browser rendering for job
// pages that only render content client-side.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length for a plain HTTP
// fetch to be considered sufficient. Shorter content suggests a
// JavaScript-rendered page.
const MinContentLength = 500

// defaultBrowserTimeout bounds a single headless-browser render.
const defaultBrowserTimeout = 30 * time.Second

// ShouldUseBrowser reports whether the extracted text is too short to be a
// real job posting, indicating the page needs browser rendering.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in headless Chrome and returns the rendered
// HTML. Requires Chrome/Chromium on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Starting headless browser for: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering time to fill the page.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners when present; ignore failures.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}

// BrowserSimple renders a page with the default timeout.
func BrowserSimple(ctx context.Context, url string, verbose bool) (string, error) {
	return WithBrowser(ctx, url, defaultBrowserTimeout, verbose)
}

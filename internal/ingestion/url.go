package ingestion

import (
	"context"
	"log"

	"github.com/Apshaya/RES-Checker/internal/fetch"
)

// jobFetcher caches fetched postings so repeated analyses of the same URL
// within the TTL do not re-hit the job board.
var jobFetcher = fetch.NewCachedFetcher(nil)

// IngestFromURL fetches a job posting from a URL, extracts its main text
// with platform-specific selectors, optionally falls back to a headless
// browser for script-rendered pages, and returns cleaned text with metadata.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := jobFetcher.Fetch(ctx, urlStr)
	if err != nil {
		return "", nil, err
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes (from cache: %v)", len(result.HTML), result.FromCache)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, err
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering",
				len(textContent), fetch.MinContentLength)
		}
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, keeping HTTP content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = rendered
			if verbose {
				log.Printf("[VERBOSE] Browser extracted text: %d chars", len(textContent))
			}
		}
	}

	cleaned := CleanText(textContent)
	if err := CheckLength(cleaned, "job posting", MinDocumentChars); err != nil {
		return "", nil, err
	}

	metadata := NewMetadata(cleaned, urlStr)
	metadata.Platform = string(platform)
	return cleaned, metadata, nil
}

// Package fetch - platform.go provides job-board detection and
// platform-specific CSS selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformLinkedIn is linkedin.com job pages
	PlatformLinkedIn Platform = "linkedin"
	// PlatformIndeed is indeed.com job pages
	PlatformIndeed Platform = "indeed"
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(host, "indeed.com"):
		return PlatformIndeed
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	default:
		return PlatformUnknown
	}
}

// PlatformContentSelectors returns content selectors optimized for a
// specific platform, most specific first.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			".jobs-description__content",
			"main",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			".jobsearch-JobComponent-description",
			"main",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a platform on
// top of the common application-form, legal and cookie noise.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Application forms
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		"[data-testid='application-form']",

		// EEO and legal
		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",
		".self-identification",

		// Social and share buttons
		".social-share",
		".share-buttons",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".similar-jobs",
			".people-also-viewed",
			".top-card-layout__cta-container",
		)
	case PlatformIndeed:
		return append(common,
			"#applyButtonLinkContainer",
			".jobsearch-CompanyReview",
			".icl-Callout",
		)
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			".post-apply",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	default:
		return common
	}
}

package utils

import "strings"

const unsplashBaseURL = "https://images.unsplash.com/"

// NormalizeImageURL turns a possibly-relative image reference into an
// absolute URL. Absolute http(s) URLs pass through unchanged; bare Unsplash
// photo fragments (e.g. "photo-1591290619762?w=800") get the Unsplash base
// prefixed so images load in the storefront; anything else is returned
// trimmed.
func NormalizeImageURL(url string) string {
	t := strings.TrimSpace(url)
	if t == "" {
		return ""
	}

	if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
		return t
	}

	if strings.HasPrefix(t, "photo-") || strings.Contains(t, "unsplash") {
		return unsplashBaseURL + strings.TrimPrefix(t, "/")
	}

	return t
}

package ratelimit

import "strings"

// MatchEndpoint resolves the limit configuration for a request, or nil when
// only the global default applies. The health probe is never limited. An
// exact path+method match wins over prefix rules; prefix rules must end in
// "/" ("/upload/" covers "/upload/resume").
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{} // zero limit means unlimited
	}

	var prefix *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if prefix == nil && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			prefix = c
		}
	}
	return prefix
}

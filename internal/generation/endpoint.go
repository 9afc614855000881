// Package generation talks to the remote rendering service: it submits resume
// documents for conversion to PDF, tracks the request lifecycle, keeps the
// resulting artifact, and classifies failures into user-facing errors.
package generation

import "strings"

// Paths served by the rendering service, relative to its /api/ prefix
const (
	PathGeneratePDF = "generate-pdf"
	PathSampleData  = "sample-data"
)

// BuildEndpoint joins a configured base URL and an API path so that exactly
// one /api/ segment precedes the path, whether or not base already ends in
// /api or contains /api/.
func BuildEndpoint(base, path string) string {
	cleanPath := strings.TrimLeft(path, "/")
	cleanPath = strings.TrimPrefix(cleanPath, "api/")
	base = strings.TrimRight(base, "/")

	switch {
	case strings.HasSuffix(base, "/api"):
		return base + "/" + cleanPath
	case strings.Contains(base, "/api/"):
		return base[:strings.Index(base, "/api/")] + "/api/" + cleanPath
	default:
		return base + "/api/" + cleanPath
	}
}

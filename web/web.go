// Package web holds the embedded browser assets served by the HTTP server.
package web

import "embed"

//go:embed templates
var Templates embed.FS

// Package web holds the embedded presentation assets.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

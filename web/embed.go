// Package web embeds the HTML templates served by the portal.
package web

import "embed"

//go:embed templates/*.html
var FS embed.FS

// Package web embeds the board's page: index.html and its script.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html styles
var assets embed.FS

// Assets returns the page bundle rooted at index.html.
func Assets() fs.FS {
	return assets
}

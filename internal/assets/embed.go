// Package assets provides embedded data files and utilities for loading them.
package assets

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

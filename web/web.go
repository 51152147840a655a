// Package web embeds the single dashboard page.
package web

import _ "embed"

//go:embed index.html
var Index []byte

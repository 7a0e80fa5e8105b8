// Package web содержит встроенные шаблоны страниц.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

package http

import (
	"fmt"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"

	"restomenu/web"
)

// NewViewsEngine создает движок шаблонов поверх встроенных страниц.
func NewViewsEngine() (*html.Engine, error) {
	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("resolving embedded templates: %w", err)
	}
	return html.NewFileSystem(nethttp.FS(templates), ".html"), nil
}

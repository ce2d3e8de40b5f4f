package handlers

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the board's web page from an fs.FS holding index.html
// and a styles/ directory.
type PageHandler struct {
	index  []byte
	styles fs.FS
}

// NewPageHandler reads index.html up front so a broken asset bundle fails at startup.
func NewPageHandler(assets fs.FS) (*PageHandler, error) {
	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return nil, fmt.Errorf("reading index.html: %w", err)
	}

	styles, err := fs.Sub(assets, "styles")
	if err != nil {
		return nil, fmt.Errorf("opening styles: %w", err)
	}

	return &PageHandler{index: index, styles: styles}, nil
}

// Index serves index.html.
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.index)
}

// Greet handles GET /greet/:name.
func Greet(c *gin.Context) {
	c.String(http.StatusOK, "Hello %s!", c.Param("name"))
}

// RegisterRoutes registers the page, its scripts and the greeting.
func (h *PageHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/index.html", h.Index)
	r.StaticFS("/styles", http.FS(h.styles))
	r.GET("/greet/:name", Greet)
}

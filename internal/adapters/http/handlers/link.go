package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

const shortNotFoundMessage = "Short URL not found."

// LinkHandler serves the URL shortener.
type LinkHandler struct {
	service *app.LinkService
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(service *app.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

// Shorten handles POST /shorten.
func (h *LinkHandler) Shorten(c *gin.Context) {
	var req dto.ShortenRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondToBindError(c, err)
		return
	}

	link, err := h.service.Shorten(c.Request.Context(), req.URL)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShortLinkResponse(link))
}

// Redirect handles GET /path/:short.
func (h *LinkHandler) Redirect(c *gin.Context) {
	link, err := h.service.Resolve(c.Request.Context(), c.Param("short"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, link.URL)
}

// Delete handles DELETE /shorten/:short.
func (h *LinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("short")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LinkHandler) respondError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.String(http.StatusNotFound, shortNotFoundMessage)
		return
	}

	dto.HandleError(c, err)
}

// RegisterRoutes registers the shortener routes.
func (h *LinkHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/shorten", h.Shorten)
	r.GET("/path/:short", h.Redirect)
	r.DELETE("/shorten/:short", h.Delete)
}

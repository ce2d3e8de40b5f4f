package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// Plain-text bodies for missing quotes. The page only checks the status.
const (
	noQuotesMessage = "No quotes found."
)

// QuoteHandler serves the quote routes.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Random handles GET /quote.
func (h *QuoteHandler) Random(c *gin.Context) {
	quote, err := h.service.Random(c.Request.Context())
	if err != nil {
		if domain.IsNotFound(err) {
			c.String(http.StatusNotFound, noQuotesMessage)
			return
		}

		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// List handles GET /quotes. With ?ids=a,b only those quotes are returned,
// in the order asked for.
func (h *QuoteHandler) List(c *gin.Context) {
	var (
		quotes []domain.Quote
		err    error
	)

	if raw := c.Query("ids"); raw != "" {
		quotes, err = h.service.GetMany(c.Request.Context(), splitIDs(raw))
	} else {
		quotes, err = h.service.List(c.Request.Context())
	}

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponses(quotes))
}

// Get handles GET /quotes/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	id := c.Param("id")

	quote, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			c.String(http.StatusNotFound, "Quote with ID %s not found", id)
			return
		}

		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// Create handles POST /quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondToBindError(c, err)
		return
	}

	quote, err := h.service.Add(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// RegisterRoutes registers the quote routes.
func (h *QuoteHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/quote", h.Random)
	r.GET("/quotes", h.List)
	r.GET("/quotes/:id", h.Get)
	r.POST("/quotes", h.Create)
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := parts[:0]

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}

	return ids
}

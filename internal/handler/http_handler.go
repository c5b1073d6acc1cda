package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wallnote/wallnote/internal/domain"
	"github.com/wallnote/wallnote/internal/render"
	"github.com/wallnote/wallnote/internal/service"
	"github.com/wallnote/wallnote/pkg/log"
	"github.com/wallnote/wallnote/pkg/response"
)

const (
	// recentLimit is how many messages the home page and the API show
	// by default.
	recentLimit = 5
	// maxAPILimit caps the limit query parameter on the API.
	maxAPILimit = 100
)

// Handler handles HTTP requests for the message board.
type Handler struct {
	messages service.MessageService
	renderer render.Renderer
}

// NewHandler creates a new HTTP handler.
func NewHandler(messages service.MessageService, renderer render.Renderer) *Handler {
	return &Handler{
		messages: messages,
		renderer: renderer,
	}
}

// RegisterRoutes registers all routes, including the catch-all 404.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.POST("/add_message", h.AddMessage)
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/messages", h.ListMessages)
	}

	r.NoRoute(h.NotFound)
}

// Home renders the home page with the most recent messages. A failing
// store yields an empty list, never an error page.
func (h *Handler) Home(c *gin.Context) {
	messages := h.messages.ListRecent(c.Request.Context(), recentLimit)
	h.renderHTML(c, http.StatusOK, "index.html", gin.H{"Messages": messages})
}

// AddMessage stores the submitted message and redirects home. The
// redirect happens whether or not the message was stored; an absent
// form field is handled like an empty one.
func (h *Handler) AddMessage(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.messages.Post(ctx, c.PostForm("message")); err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Msg("post message failed")
	}
	c.Redirect(http.StatusFound, "/")
}

// About renders the static about page.
func (h *Handler) About(c *gin.Context) {
	h.renderHTML(c, http.StatusOK, "about.html", nil)
}

// Contact renders the static contact page.
func (h *Handler) Contact(c *gin.Context) {
	h.renderHTML(c, http.StatusOK, "contact.html", nil)
}

// Health reports process liveness. It never touches the store, so it
// keeps answering when persistence is down.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "wallnote is alive",
	})
}

// NotFound renders the custom 404 page for unmatched paths.
func (h *Handler) NotFound(c *gin.Context) {
	h.renderHTML(c, http.StatusNotFound, "404.html", nil)
}

// ListMessages returns recent messages as JSON.
func (h *Handler) ListMessages(c *gin.Context) {
	limit := recentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		if n > maxAPILimit {
			n = maxAPILimit
		}
		limit = n
	}

	messages := h.messages.ListRecent(c.Request.Context(), limit)
	items := make([]domain.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, messages[i].ToResponse())
	}

	response.Success(c, gin.H{
		"messages": items,
		"count":    len(items),
	})
}

// renderHTML renders the named template and writes it as the response
// body. Template failures are the only path that surfaces a 500.
func (h *Handler) renderHTML(c *gin.Context, status int, name string, data any) {
	body, err := h.renderer.Render(name, data)
	if err != nil {
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Str(log.FieldTemplate, name).Msg("template render failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", body)
}

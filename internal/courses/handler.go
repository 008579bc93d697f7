package courses

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reventhtv/careerscope-AI/internal/shared/server/respond"
)

// Handler serves the course catalog.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches course routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.domains)
	rg.GET("/courses/:domain", h.recommend)
}

func (h *Handler) domains(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{"domains": Domains()})
}

func (h *Handler) recommend(c *gin.Context) {
	domain := c.Param("domain")

	limit := DefaultLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items := Recommend(domain, limit)
	if len(items) == 0 {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown domain", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"domain":  domain,
		"courses": items,
	})
}

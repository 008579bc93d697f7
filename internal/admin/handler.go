package admin

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reventhtv/careerscope-AI/internal/auditlog"
	"github.com/reventhtv/careerscope-AI/internal/shared/server/respond"
)

// Handler serves the admin login and audit log views. Authentication is a
// single configured credential; the session token is derived from it, so
// restarting the server or rotating the credential invalidates old tokens.
type Handler struct {
	Username string
	Password string
	Logs     *auditlog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(username, password string, logs *auditlog.Logger) *Handler {
	return &Handler{Username: username, Password: password, Logs: logs}
}

// RegisterRoutes attaches admin routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.login)

	protected := rg.Group("/admin")
	protected.Use(h.requireToken())
	protected.GET("/logs/analyses", h.analysesLog)
	protected.GET("/logs/feedback", h.feedbackLog)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.Password)) == 1
	if !userOK || !passOK {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"token": h.token()})
}

func (h *Handler) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.token())) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		c.Next()
	}
}

func (h *Handler) token() string {
	sum := sha256.Sum256([]byte(h.Username + ":" + h.Password))
	return hex.EncodeToString(sum[:])
}

func (h *Handler) analysesLog(c *gin.Context) {
	rows, err := h.Logs.ReadAnalyses(limitQuery(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read analyses log", nil)
		return
	}

	resp := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, gin.H{
			"timestamp":       row.Timestamp,
			"analysisId":      row.AnalysisID,
			"guestId":         row.GuestID,
			"fileName":        row.FileName,
			"domain":          row.Domain,
			"confidence":      row.Confidence,
			"experienceLevel": row.ExperienceLevel,
			"structureScore":  row.StructureScore,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) feedbackLog(c *gin.Context) {
	rows, err := h.Logs.ReadFeedback(limitQuery(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read feedback log", nil)
		return
	}

	resp := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, gin.H{
			"timestamp": row.Timestamp,
			"guestId":   row.GuestID,
			"rating":    row.Rating,
			"comment":   row.Comment,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func limitQuery(c *gin.Context) int {
	limit := 100
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 1000 {
			limit = parsed
		}
	}
	return limit
}

package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/reventhtv/careerscope-AI/internal/auditlog"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auditlog.Logger) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logs, err := auditlog.New(t.TempDir())
	require.NoError(t, err)
	h := NewHandler("admin", "admin@careerscope", logs)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r, logs
}

func login(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := login(t, r, "admin", "admin@careerscope")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	require.Equal(t, http.StatusUnauthorized, login(t, r, "admin", "wrong").Code)
	require.Equal(t, http.StatusUnauthorized, login(t, r, "root", "admin@careerscope").Code)
}

func TestLogEndpointsRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/logs/analyses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/logs/analyses", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnalysesLogView(t *testing.T) {
	r, logs := newTestRouter(t)

	require.NoError(t, logs.AppendAnalysis(auditlog.AnalysisRow{
		Timestamp:       time.Now().UTC(),
		AnalysisID:      "a1",
		GuestID:         "g1",
		FileName:        "resume.pdf",
		Domain:          "Cloud & DevOps",
		Confidence:      77,
		ExperienceLevel: "Mid-level",
		StructureScore:  64,
	}))

	w := login(t, r, "admin", "admin@careerscope")
	require.Equal(t, http.StatusOK, w.Code)
	var loginResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/logs/analyses", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp["token"])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "a1", rows[0]["analysisId"])
	require.Equal(t, "Cloud & DevOps", rows[0]["domain"])
}

func TestFeedbackLogView(t *testing.T) {
	r, logs := newTestRouter(t)

	require.NoError(t, logs.AppendFeedback(auditlog.FeedbackRow{
		Timestamp: time.Now().UTC(),
		GuestID:   "g1",
		Rating:    5,
		Comment:   "great",
	}))

	w := login(t, r, "admin", "admin@careerscope")
	var loginResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/logs/feedback", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp["token"])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, float64(5), rows[0]["rating"])
}

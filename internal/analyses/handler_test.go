package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/reventhtv/careerscope-AI/internal/ai"
	"github.com/reventhtv/careerscope-AI/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	h := NewHandler(svc)
	r := gin.New()
	r.Use(middleware.GuestIdentity())
	h.RegisterRoutes(r.Group("/api/v1"))
	return r, svc
}

func multipartUpload(t *testing.T, fileName string, payload []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestCreateAnalysis(t *testing.T) {
	r, _ := newTestRouter(t)

	body, contentType := multipartUpload(t, "resume.docx", buildDocx(t, resumeText), map[string]string{
		"jobDescription": "python machine learning sql",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(middleware.GuestIDHeader, "guest-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID     string `json:"id"`
		Result struct {
			Domain          string   `json:"domain"`
			ExperienceLevel string   `json:"experienceLevel"`
			StructureScore  int      `json:"structureScore"`
			SuggestedRoles  []string `json:"suggestedRoles"`
			JDMatch         *struct {
				FitScore int `json:"fitScore"`
			} `json:"jdMatch"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "Data Science", resp.Result.Domain)
	require.NotEmpty(t, resp.Result.SuggestedRoles)
	require.NotNil(t, resp.Result.JDMatch)
	require.Greater(t, resp.Result.JDMatch.FitScore, 0)

	// Storage keys never leak into responses.
	require.NotContains(t, w.Body.String(), "storageKey")
	require.NotContains(t, w.Body.String(), "extracted.txt")
}

func TestCreateAnalysisRequiresFile(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.Header.Set(middleware.GuestIDHeader, "guest-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "file is required")
}

func TestGetAnalysisScopedToGuest(t *testing.T) {
	r, svc := newTestRouter(t)

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "guest-1",
		FileName: "resume.docx",
		File:     bytes.NewReader(buildDocx(t, resumeText)),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+analysis.ID, nil)
	req.Header.Set(middleware.GuestIDHeader, "guest-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Another guest cannot see it.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+analysis.ID, nil)
	req.Header.Set(middleware.GuestIDHeader, "guest-2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAnalyses(t *testing.T) {
	r, svc := newTestRouter(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Analyze(context.Background(), AnalyzeRequest{
			GuestID:  "guest-1",
			FileName: "resume.docx",
			File:     bytes.NewReader(buildDocx(t, resumeText)),
		})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit=2", nil)
	req.Header.Set(middleware.GuestIDHeader, "guest-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.Equal(t, "Data Science", items[0]["domain"])
}

func TestSuggestionsEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "guest-1",
		FileName: "resume.docx",
		File:     bytes.NewReader(buildDocx(t, resumeText)),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/"+analysis.ID+"/suggestions", nil)
	req.Header.Set(middleware.GuestIDHeader, "guest-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, ai.NotConfigured, resp["suggestions"])
}

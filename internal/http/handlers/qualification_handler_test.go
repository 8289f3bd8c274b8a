package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/job-qualifier/internal/catalog"
	"github.com/ignatzorin/job-qualifier/internal/domain/entity"
	"github.com/ignatzorin/job-qualifier/internal/dto"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
)

type apiResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func newAPIRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewQualificationHandler(qualification.NewCheckApplicationUseCase(catalog.Positions()))
	r.GET("/api/positions", handler.ListPositions)
	r.POST("/api/qualifications", handler.Check)
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/qualifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQualificationHandler_ListPositions(t *testing.T) {
	r := newAPIRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/positions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp apiResponse[[]dto.PositionResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 4)
	assert.Equal(t, catalog.TitleEntryLevelPythonEngineer, resp.Data[0].Title)
	assert.Equal(t, []string{"Agile course"}, resp.Data[0].Desired)
	assert.Equal(t, catalog.TitleProjectManager, resp.Data[2].Title)
	assert.Len(t, resp.Data[2].Required, 3)
	assert.Empty(t, resp.Data[2].Desired)
}

func TestQualificationHandler_Check_ProjectManager(t *testing.T) {
	r := newAPIRouter()

	w := postJSON(r, `{
		"degree": "None",
		"certification": "PMI Lean Project Management Certification",
		"python_years": 0, "data_dev_years": 0, "agile_project_years": 2,
		"manage_years": "3", "expert_system_years": 0, "data_arch_years": 100
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp apiResponse[entity.Evaluation]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Qualified, 1)
	assert.Equal(t, catalog.TitleProjectManager, resp.Data.Qualified[0].Title)
	assert.Empty(t, resp.Data.Qualified[0].Unmet)
	assert.Len(t, resp.Data.NotQualified, 3)
	assert.Contains(t, w.Body.String(), `"unmet":[]`)
}

func TestQualificationHandler_Check_ValidationErrors(t *testing.T) {
	r := newAPIRouter()

	w := postJSON(r, `{
		"degree": "None",
		"certification": "None",
		"python_years": 101, "data_dev_years": 0, "agile_project_years": 0,
		"manage_years": 0, "expert_system_years": 0
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp apiResponse[json.RawMessage]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, []string{
		"Years of Python development must be a whole number from 0 to 100.",
		"Years in data architecture and data development must be a whole number from 0 to 100.",
	}, resp.Error.Details)
}

func TestQualificationHandler_Check_MalformedJSON(t *testing.T) {
	r := newAPIRouter()

	w := postJSON(r, `{"degree":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler(len(catalog.Positions())).Health)
	r.GET("/empty", NewHealthHandler(0).Health)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	req, _ = http.NewRequest(http.MethodGet, "/empty", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

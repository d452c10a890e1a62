package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic/internal/assessment"
	"mosaic/internal/config"
	"mosaic/internal/logging"
	"mosaic/internal/narrative"
	"mosaic/internal/pricing"
	"mosaic/internal/report"
	"mosaic/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bank, err := assessment.LoadBank(logging.Nop())
	require.NoError(t, err)
	table, err := narrative.LoadTable()
	require.NoError(t, err)

	generator, err := report.NewGenerator(bank, table, nil)
	require.NoError(t, err)

	store, err := storage.Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	handler := NewAPIHandler(generator, store, bank, logging.Nop())
	cfg := config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		Environment:    "test",
		AllowedOrigins: []string{"*"},
		ReadTimeout:    5,
		WriteTimeout:   5,
	}
	return NewServer(cfg, handler, nil, nil, nil), store
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "error: %s", envelope.Error)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestCreateAssessment(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
		Profile: report.Profile{
			Name:       "Dana Reyes",
			Occupation: "engineer",
			Email:      "dana@example.com",
			Category:   pricing.CategoryProfessional,
		},
		Answers: assessment.AnswerSet{
			"cog-1": 5, "cog-2": 5, "cog-3": 5, "cog-4": 5, "cog-5": 5,
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var rep report.Report
	decodeData(t, rec, &rep)
	assert.NotEmpty(t, rep.ID)
	assert.Len(t, rep.Scores, 6)
	assert.Equal(t, "strategist", rep.Archetype.Key)
	assert.Equal(t, 4900, rep.Tier.PriceCents)
}

func TestCreateAssessmentRequiresName(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
		Profile: report.Profile{Email: "anon@example.com", Category: pricing.CategoryStudent},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAssessmentToleratesSparseAnswers(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
		Profile: report.Profile{Name: "Quinn", Category: pricing.CategoryStudent},
		Answers: assessment.AnswerSet{
			"cog-1":       9,  // clamped to 5
			"mot-2":       -3, // clamped to 1
			"nonexistent": 4,  // ignored
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var rep report.Report
	decodeData(t, rec, &rep)
	assert.Equal(t, 5, rep.Scores[0].Value)
	assert.Equal(t, 1, rep.Scores[1].Value)
	assert.True(t, rep.Tier.Free)
}

func TestGetAssessmentRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
		Profile: report.Profile{Name: "Rowan", Email: "rowan@example.com", Category: pricing.CategoryEducator},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created report.Report
	decodeData(t, rec, &created)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/assessments/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched report.Report
	decodeData(t, rec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Archetype.Key, fetched.Archetype.Key)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/assessments?email=rowan@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []storage.Summary
	decodeData(t, rec, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, created.ID, summaries[0].ID)
}

func TestGetAssessmentNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/assessments/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListQuestions(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Questions []assessment.Question `json:"questions"`
	}
	decodeData(t, rec, &data)
	assert.Len(t, data.Questions, 30)
}

func TestGetPricing(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/pricing/student", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tier struct {
		PriceCents int  `json:"price_cents"`
		Free       bool `json:"is_free"`
	}
	decodeData(t, rec, &tier)
	assert.Zero(t, tier.PriceCents)
	assert.True(t, tier.Free)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/pricing/professional", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &tier)
	assert.Equal(t, 4900, tier.PriceCents)
	assert.False(t, tier.Free)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/pricing/wholesale", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckout(t *testing.T) {
	srv, _ := newTestServer(t)

	submit := func(category pricing.Category) report.Report {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/assessments", CreateAssessmentRequest{
			Profile: report.Profile{
				Name:     "Sam",
				Email:    fmt.Sprintf("sam+%s@example.com", category),
				Category: category,
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var rep report.Report
		decodeData(t, rec, &rep)
		return rep
	}

	free := submit(pricing.CategoryNonprofit)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/checkout", CheckoutRequest{ReportID: free.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp CheckoutResponse
	decodeData(t, rec, &resp)
	assert.True(t, resp.Granted)
	assert.Zero(t, resp.AmountCents)
	assert.Empty(t, resp.CheckoutRef)

	paid := submit(pricing.CategoryExecutive)
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/checkout", CheckoutRequest{ReportID: paid.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &resp)
	assert.False(t, resp.Granted)
	assert.Equal(t, 7900, resp.AmountCents)
	assert.Equal(t, "usd", resp.Currency)
	assert.NotEmpty(t, resp.CheckoutRef)

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/checkout", CheckoutRequest{ReportID: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]string
	decodeData(t, rec, &data)
	assert.Equal(t, "ok", data["status"])
}

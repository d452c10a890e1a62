package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mosaic/internal/assessment"
	"mosaic/internal/logging"
	"mosaic/internal/pricing"
	"mosaic/internal/report"
	"mosaic/internal/storage"
)

// APIHandler serves the assessment endpoints.
type APIHandler struct {
	generator *report.Generator
	store     *storage.Store
	bank      *assessment.Bank
	logger    logging.Logger
	startTime time.Time
}

// NewAPIHandler wires the handler to its collaborators. The store may be
// nil, in which case reports are generated but not persisted and lookup
// endpoints report unavailability.
func NewAPIHandler(generator *report.Generator, store *storage.Store, bank *assessment.Bank, logger logging.Logger) *APIHandler {
	return &APIHandler{
		generator: generator,
		store:     store,
		bank:      bank,
		logger:    logging.OrNop(logger),
		startTime: time.Now(),
	}
}

// CreateAssessmentRequest is the submission payload. Answers map question
// identifiers to raw Likert values; malformed entries are normalized
// during scoring rather than rejected.
type CreateAssessmentRequest struct {
	Profile report.Profile       `json:"profile"`
	Answers assessment.AnswerSet `json:"answers"`
}

// CreateAssessment scores a submission and returns the full report.
func (h *APIHandler) CreateAssessment(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if strings.TrimSpace(req.Profile.Name) == "" {
		respondError(c, http.StatusBadRequest, "profile name is required")
		return
	}

	rep, err := h.generator.Generate(c.Request.Context(), req.Profile, req.Answers)
	if err != nil {
		h.logger.Error("report generation failed: %v", err)
		respondError(c, http.StatusInternalServerError, "report generation failed")
		return
	}

	if h.store != nil {
		if err := h.store.Save(c.Request.Context(), rep); err != nil {
			// The caller still gets their report; persistence catches up on
			// the next submission.
			h.logger.Error("persist report %s: %v", rep.ID, err)
		}
	}

	respondOK(c, http.StatusCreated, rep)
}

// GetAssessment returns a previously stored report by identifier.
func (h *APIHandler) GetAssessment(c *gin.Context) {
	if h.store == nil {
		respondError(c, http.StatusServiceUnavailable, "report storage is not configured")
		return
	}

	id := c.Param("id")
	rep, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "report not found")
			return
		}
		h.logger.Error("load report %s: %v", id, err)
		respondError(c, http.StatusInternalServerError, "failed to load report")
		return
	}
	respondOK(c, http.StatusOK, rep)
}

// ListAssessments returns summaries of stored reports for an email.
func (h *APIHandler) ListAssessments(c *gin.Context) {
	if h.store == nil {
		respondError(c, http.StatusServiceUnavailable, "report storage is not configured")
		return
	}

	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		respondError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	summaries, err := h.store.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("list reports for %s: %v", email, err)
		respondError(c, http.StatusInternalServerError, "failed to list reports")
		return
	}
	respondOK(c, http.StatusOK, summaries)
}

// ListQuestions returns the question catalog in presentation order.
func (h *APIHandler) ListQuestions(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"questions": h.bank.Questions()})
}

// GetPricing resolves the tier for one customer category.
func (h *APIHandler) GetPricing(c *gin.Context) {
	category, err := pricing.ParseCategory(c.Param("category"))
	if err != nil {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}
	respondOK(c, http.StatusOK, pricing.ResolveTier(category))
}

// CheckoutRequest initiates payment for a stored report.
type CheckoutRequest struct {
	ReportID string `json:"report_id" binding:"required"`
}

// CheckoutResponse describes the access decision. Sponsored tiers are
// granted immediately; paid tiers get a checkout reference for the
// payment front end to complete.
type CheckoutResponse struct {
	ReportID    string `json:"report_id"`
	Granted     bool   `json:"granted"`
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency,omitempty"`
	CheckoutRef string `json:"checkout_ref,omitempty"`
}

// Checkout grants sponsored reports outright and opens a payment
// reference for everything else.
func (h *APIHandler) Checkout(c *gin.Context) {
	if h.store == nil {
		respondError(c, http.StatusServiceUnavailable, "report storage is not configured")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	rep, err := h.store.Get(c.Request.Context(), req.ReportID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "report not found")
			return
		}
		h.logger.Error("load report %s: %v", req.ReportID, err)
		respondError(c, http.StatusInternalServerError, "failed to load report")
		return
	}

	tier := pricing.ResolveTier(rep.Profile.Category)
	resp := CheckoutResponse{
		ReportID:    rep.ID,
		Granted:     tier.Free,
		AmountCents: tier.PriceCents,
	}
	if !tier.Free {
		resp.Currency = "usd"
		resp.CheckoutRef = uuid.NewString()
	}
	respondOK(c, http.StatusOK, resp)
}

// Health reports liveness.
func (h *APIHandler) Health(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).String(),
	})
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/export"
	"github.com/iwvelando/paint-bid/internal/pricing"
	"github.com/iwvelando/paint-bid/internal/settings"
	"github.com/iwvelando/paint-bid/internal/store"
	"github.com/iwvelando/paint-bid/pkg/constants"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// BidStore persists saved bids.
type BidStore interface {
	Save(ctx context.Context, b bid.Bid) error
	Load(ctx context.Context, id string) (bid.Bid, error)
	Update(ctx context.Context, b bid.Bid) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]bid.ListItem, error)
}

type handler struct {
	logger        *zap.Logger
	settings      *settings.Store
	bids          BidStore
	maxUploadSize int64
	version       string
	now           func() time.Time
}

// NewHandler constructs the HTTP handler that serves the bid API.
func NewHandler(logger *zap.Logger, settingsStore *settings.Store, bids BidStore, maxUploadSize int64, version string) http.Handler {
	return newHandler(logger, settingsStore, bids, maxUploadSize, version, time.Now)
}

func newHandler(logger *zap.Logger, settingsStore *settings.Store, bids BidStore, maxUploadSize int64, version string, now func() time.Time) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		settings:      settingsStore,
		bids:          bids,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		now:           now,
	}

	r := chi.NewRouter()
	r.Use(h.limitBody)

	r.Get("/api/version", h.handleVersion)

	r.Post("/api/calculate/{calculatorType}", h.handleCalculate)
	r.Get("/api/auto-measurements/{side}", h.handleAutoMeasurements)

	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/pricing", h.handleGetPricing)
		r.Put("/pricing", h.handlePutPricing)
		r.Get("/company", h.handleGetCompany)
		r.Put("/company", h.handlePutCompany)
		r.Post("/line-items", h.handleAddLineItem)
		r.Patch("/line-items/{id}", h.handleUpdateLineItem)
		r.Delete("/line-items/{id}", h.handleDeleteLineItem)
		r.Post("/sections", h.handleAddSection)
		r.Patch("/sections/{id}", h.handleUpdateSection)
		r.Delete("/sections/{id}", h.handleDeleteSection)
		r.Post("/reset", h.handleReset)
	})

	r.Route("/api/bids", func(r chi.Router) {
		r.Get("/", h.handleListBids)
		r.Post("/", h.handleCreateBid)
		r.Get("/{id}", h.handleGetBid)
		r.Put("/{id}", h.handleUpdateBid)
		r.Delete("/{id}", h.handleDeleteBid)
		r.Get("/{id}/pdf", h.handleBidPDF)
		r.Get("/{id}/xlsx", h.handleBidWorkbook)
		r.Get("/{id}/duration", h.handleBidDuration)
	})

	return r
}

func (h *handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

type calculateResponse struct {
	Result    calculator.BidResult          `json:"result"`
	Durations []calculator.DurationEstimate `json:"durations"`
	Warnings  []string                      `json:"warnings,omitempty"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	calculatorType := pricing.CalculatorType(chi.URLParam(r, "calculatorType"))
	raw, ok := h.readBody(w, r, op)
	if !ok {
		return
	}
	inputs, err := calculator.DecodeInputs(calculatorType, raw)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	snapshot := h.settings.Snapshot()
	result, err := calculator.CalculateAt(inputs, snapshot, h.now())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.logger.Debug("bid calculated",
		zap.String("op", op),
		zap.String("calculatorType", string(calculatorType)),
		zap.Float64("total", result.Total),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Result:    result,
		Durations: calculator.EstimateJobDuration(result.Labor, snapshot.CrewRates),
	})
}

// Measurement fields are inlined. Materials is a quick paint estimate for
// the derived wall or siding area, present when paintType is given.
type interiorAutoResponse struct {
	calculator.InteriorAutoMeasurements
	Materials *calculator.MaterialBreakdown `json:"materials,omitempty"`
}

type exteriorAutoResponse struct {
	calculator.ExteriorAutoMeasurements
	Materials *calculator.MaterialBreakdown `json:"materials,omitempty"`
}

func (h *handler) handleAutoMeasurements(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAutoMeasurements"

	houseSqft, err := strconv.ParseFloat(strings.TrimSpace(r.URL.Query().Get("houseSqft")), 64)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "houseSqft must be a number", op)
		return
	}
	paintType := pricing.PaintType(strings.TrimSpace(r.URL.Query().Get("paintType")))

	snapshot := h.settings.Snapshot()
	switch side := chi.URLParam(r, "side"); side {
	case "interior":
		if !h.checkPaintType(w, paintType, pricing.InteriorPaintTypes, op) {
			return
		}
		resp := interiorAutoResponse{InteriorAutoMeasurements: calculator.CalculateInteriorSqftAutoMeasurements(houseSqft, snapshot)}
		if paintType != "" {
			materials := calculator.SimpleMaterials(resp.WallSqft, paintType, snapshot.InteriorCoverage.WallSqftPerGallon, snapshot.InteriorPaint)
			resp.Materials = &materials
		}
		h.writeJSON(w, http.StatusOK, resp)
	case "exterior":
		if !h.checkPaintType(w, paintType, pricing.ExteriorPaintTypes, op) {
			return
		}
		resp := exteriorAutoResponse{ExteriorAutoMeasurements: calculator.CalculateExteriorSqftAutoMeasurements(houseSqft, snapshot)}
		if paintType != "" {
			materials := calculator.SimpleMaterials(resp.SidingSqft, paintType, snapshot.ExteriorCoverage.WallSqftPerGallon, snapshot.ExteriorPaint)
			resp.Materials = &materials
		}
		h.writeJSON(w, http.StatusOK, resp)
	default:
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("unknown side %q, expected interior or exterior", side), op)
	}
}

// checkPaintType accepts an empty paint type or one offered on this side.
func (h *handler) checkPaintType(w http.ResponseWriter, paintType pricing.PaintType, offered []pricing.PaintType, op string) bool {
	if paintType == "" {
		return true
	}
	for _, candidate := range offered {
		if candidate == paintType {
			return true
		}
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("paint type %q is not offered here", paintType), op)
	return false
}

func (h *handler) handleGetPricing(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.settings.Snapshot())
}

type pricingResponse struct {
	Pricing  *pricing.Settings `json:"pricing"`
	Warnings []string          `json:"warnings,omitempty"`
}

func (h *handler) handlePutPricing(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePutPricing"

	var next pricing.Settings
	if !h.decodeJSON(w, r, &next, op) {
		return
	}
	if err := h.settings.ReplacePricing(&next); err != nil {
		h.respondSettingsError(w, err, op)
		return
	}

	snapshot := h.settings.Snapshot()
	h.logger.Info("pricing replaced",
		zap.String("op", op),
		zap.Int("lineItems", len(snapshot.LineItems)),
	)
	h.writeJSON(w, http.StatusOK, pricingResponse{Pricing: snapshot, Warnings: snapshot.Validate()})
}

func (h *handler) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.settings.Company())
}

func (h *handler) handlePutCompany(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePutCompany"

	var company settings.CompanySettings
	if !h.decodeJSON(w, r, &company, op) {
		return
	}
	if err := h.settings.UpdateCompany(company); err != nil {
		h.respondSettingsError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, h.settings.Company())
}

func (h *handler) handleAddLineItem(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAddLineItem"

	var item pricing.LineItem
	if !h.decodeJSON(w, r, &item, op) {
		return
	}
	added, err := h.settings.AddLineItem(item)
	if err != nil {
		h.respondSettingsError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusCreated, added)
}

func (h *handler) handleUpdateLineItem(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdateLineItem"

	var patch settings.LineItemPatch
	if !h.decodeJSON(w, r, &patch, op) {
		return
	}
	updated, err := h.settings.UpdateLineItem(chi.URLParam(r, "id"), patch)
	if err != nil {
		h.respondSettingsError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *handler) handleDeleteLineItem(w http.ResponseWriter, r *http.Request) {
	if err := h.settings.DeleteLineItem(chi.URLParam(r, "id")); err != nil {
		h.respondSettingsError(w, err, "server.handleDeleteLineItem")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleAddSection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAddSection"

	var section pricing.Section
	if !h.decodeJSON(w, r, &section, op) {
		return
	}
	added, err := h.settings.AddSection(section)
	if err != nil {
		h.respondSettingsError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusCreated, added)
}

func (h *handler) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdateSection"

	var patch settings.SectionPatch
	if !h.decodeJSON(w, r, &patch, op) {
		return
	}
	updated, err := h.settings.UpdateSection(chi.URLParam(r, "id"), patch)
	if err != nil {
		h.respondSettingsError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *handler) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.settings.DeleteSection(chi.URLParam(r, "id")); err != nil {
		h.respondSettingsError(w, err, "server.handleDeleteSection")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleReset(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReset"

	if err := h.settings.Reset(); err != nil {
		h.respondSettingsError(w, err, op)
		return
	}
	h.logger.Info("settings reset to defaults", zap.String("op", op))
	h.writeJSON(w, http.StatusOK, h.settings.Snapshot())
}

// bidRequest is the body of a create or update. The result is always
// recalculated against the current pricing.
type bidRequest struct {
	CalculatorType pricing.CalculatorType `json:"calculatorType"`
	Customer       bid.CustomerInfo       `json:"customer"`
	Inputs         json.RawMessage        `json:"inputs"`
}

func (h *handler) handleListBids(w http.ResponseWriter, r *http.Request) {
	items, err := h.bids.List(r.Context())
	if err != nil {
		h.respondBidError(w, err, "server.handleListBids")
		return
	}
	h.writeJSON(w, http.StatusOK, items)
}

func (h *handler) handleCreateBid(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCreateBid"

	var req bidRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}
	inputs, result, ok := h.calculateRequest(w, req, op)
	if !ok {
		return
	}

	b, err := bid.New(req.CalculatorType, req.Customer, inputs, result, h.now())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if err := h.bids.Save(r.Context(), b); err != nil {
		h.respondBidError(w, err, op)
		return
	}

	h.logger.Info("bid saved",
		zap.String("op", op),
		zap.String("id", b.ID),
		zap.String("calculatorType", string(b.CalculatorType)),
	)
	h.writeJSON(w, http.StatusCreated, b)
}

func (h *handler) handleGetBid(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadBid(w, r, "server.handleGetBid")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *handler) handleUpdateBid(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdateBid"

	b, ok := h.loadBid(w, r, op)
	if !ok {
		return
	}

	var req bidRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}
	if req.CalculatorType == "" {
		req.CalculatorType = b.CalculatorType
	}
	if req.CalculatorType != b.CalculatorType {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("bid %s is a %s bid, cannot change it to %s", b.ID, b.CalculatorType, req.CalculatorType), op)
		return
	}

	inputs, result, ok := h.calculateRequest(w, req, op)
	if !ok {
		return
	}
	if err := b.Revise(req.Customer, inputs, result, h.now()); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if err := h.bids.Update(r.Context(), b); err != nil {
		h.respondBidError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *handler) handleDeleteBid(w http.ResponseWriter, r *http.Request) {
	if err := h.bids.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondBidError(w, err, "server.handleDeleteBid")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleBidPDF(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBidPDF"

	b, ok := h.loadBid(w, r, op)
	if !ok {
		return
	}

	now := h.now()
	var buf bytes.Buffer
	if err := export.BidPDFAt(&buf, b, h.settings.Company(), now); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render PDF: %v", err), op)
		return
	}
	h.writeAttachment(w, contentTypePDF, export.Filename(b, now), buf.Bytes(), op)
}

func (h *handler) handleBidWorkbook(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBidWorkbook"

	b, ok := h.loadBid(w, r, op)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.BidWorkbook(&buf, b); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render workbook: %v", err), op)
		return
	}
	filename := strings.TrimSuffix(export.Filename(b, h.now()), ".pdf") + ".xlsx"
	h.writeAttachment(w, contentTypeXLSX, filename, buf.Bytes(), op)
}

func (h *handler) handleBidDuration(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBidDuration"

	b, ok := h.loadBid(w, r, op)
	if !ok {
		return
	}
	crews := h.settings.Snapshot().CrewRates

	crewParam := strings.TrimSpace(r.URL.Query().Get("crewSize"))
	if crewParam == "" {
		h.writeJSON(w, http.StatusOK, calculator.EstimateJobDuration(b.Result.Labor, crews))
		return
	}

	crewSize, err := strconv.Atoi(crewParam)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, "crewSize must be an integer", op)
		return
	}
	estimate, found := calculator.EstimateForCrew(b.Result.Labor, crews, crewSize)
	if !found {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("no crew rate configured for crew size %d", crewSize), op)
		return
	}
	h.writeJSON(w, http.StatusOK, estimate)
}

func (h *handler) calculateRequest(w http.ResponseWriter, req bidRequest, op string) (calculator.Inputs, calculator.BidResult, bool) {
	inputs, err := calculator.DecodeInputs(req.CalculatorType, req.Inputs)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return nil, calculator.BidResult{}, false
	}
	result, err := calculator.CalculateAt(inputs, h.settings.Snapshot(), h.now())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return nil, calculator.BidResult{}, false
	}
	return inputs, result, true
}

func (h *handler) loadBid(w http.ResponseWriter, r *http.Request, op string) (bid.Bid, bool) {
	b, err := h.bids.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondBidError(w, err, op)
		return bid.Bid{}, false
	}
	return b, true
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return nil, false
	}
	return raw, true
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, target any, op string) bool {
	raw, ok := h.readBody(w, r, op)
	if !ok {
		return false
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "request body is empty", op)
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondSettingsError(w http.ResponseWriter, err error, op string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, settings.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, settings.ErrDefaultLineItem), errors.Is(err, settings.ErrDefaultSection):
		status = http.StatusConflict
	case errors.Is(err, settings.ErrInvalid):
		status = http.StatusBadRequest
	}
	h.respondErrorWithOp(w, status, err.Error(), op)
}

func (h *handler) respondBidError(w http.ResponseWriter, err error, op string) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
	}
	h.respondErrorWithOp(w, status, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	} else {
		h.logger.Warn("request rejected",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte, op string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write attachment",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

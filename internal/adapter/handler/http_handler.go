package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tdnguyen94/stocktrail/internal/core/domain"
	"github.com/tdnguyen94/stocktrail/internal/core/service"
	"github.com/tdnguyen94/stocktrail/internal/port"
)

// principalHeader is set by the auth gateway in front of this service; token
// verification and identity resolution live there, not here.
const principalHeader = "X-Principal-ID"

type contextKey string

const principalKey contextKey = "principal"

type HTTPHandler struct {
	inventory *service.InventoryService
	catalog   *service.CatalogService
	logger    *zap.Logger
}

func NewHTTPHandler(inventory *service.InventoryService, catalog *service.CatalogService, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{inventory: inventory, catalog: catalog, logger: logger}
}

// PrincipalMiddleware materializes the acting principal from the gateway
// header into the request context. No header, no access.
func PrincipalMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(principalHeader), 10, 64)
		if err != nil || id <= 0 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid principal"})
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, domain.Principal{ID: id})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func principalFrom(r *http.Request) domain.Principal {
	principal, _ := r.Context().Value(principalKey).(domain.Principal)
	return principal
}

type applyDeltaRequest struct {
	RequestID string `json:"request_id,omitempty"`
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type createProductRequest struct {
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Description string `json:"description,omitempty"`
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type ledgerEntryResponse struct {
	EntryID     int64     `json:"entry_id"`
	WarehouseID int64     `json:"warehouse_id"`
	ProductID   int64     `json:"product_id"`
	Quantity    int64     `json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
}

type stockLogResponse struct {
	LogID          int64     `json:"log_id"`
	ProductID      int64     `json:"product_id"`
	WarehouseID    int64     `json:"warehouse_id"`
	PrincipalID    int64     `json:"principal_id"`
	Action         string    `json:"action"`
	QuantityChange int64     `json:"quantity_change"`
	Timestamp      time.Time `json:"timestamp"`
}

type quantityResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) ApplyDelta(w http.ResponseWriter, r *http.Request) {
	var req applyDeltaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.ProductID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "product_id is required"})
		return
	}

	entry, err := h.inventory.ApplyDelta(r.Context(), principalFrom(r), req.ProductID, req.Quantity, req.RequestID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *HTTPHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid entry id"})
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.inventory.SetQuantity(r.Context(), principalFrom(r), entryID, req.Quantity)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *HTTPHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.inventory.ListLedgerEntries(r.Context(), principalFrom(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	out := make([]ledgerEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) ListStockLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.inventory.ListAuditRecords(r.Context(), principalFrom(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	out := make([]stockLogResponse, 0, len(logs))
	for _, rec := range logs {
		out = append(out, stockLogResponse{
			LogID:          rec.ID,
			ProductID:      rec.ProductID,
			WarehouseID:    rec.WarehouseID,
			PrincipalID:    rec.PrincipalID,
			Action:         string(rec.Action),
			QuantityChange: rec.QuantityChange,
			Timestamp:      rec.Timestamp,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) GetProductQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}
	qty, err := h.inventory.GetQuantity(r.Context(), principalFrom(r), productID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quantityResponse{ProductID: productID, Quantity: qty})
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.CategoryID <= 0 || req.Name == "" || req.SKU == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required fields"})
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), principalFrom(r), req.CategoryID, req.Name, req.SKU, req.Description)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.CategoryID <= 0 || req.Name == "" || req.SKU == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required fields"})
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), principalFrom(r), productID, req.CategoryID, req.Name, req.SKU, req.Description)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context(), principalFrom(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), principalFrom(r), req.Name)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context(), principalFrom(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "no warehouse assigned"})
	case errors.Is(err, service.ErrCrossTenantAccess):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "entity belongs to another warehouse"})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, service.ErrDuplicateSKU):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "sku already exists in this warehouse"})
	case errors.Is(err, service.ErrDuplicateRequest):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "duplicate request"})
	case errors.Is(err, service.ErrZeroDelta):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "quantity must be non-zero"})
	case errors.Is(err, port.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "write conflict, please retry"})
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func toEntryResponse(entry *domain.LedgerEntry) ledgerEntryResponse {
	return ledgerEntryResponse{
		EntryID:     entry.ID,
		WarehouseID: entry.WarehouseID,
		ProductID:   entry.ProductID,
		Quantity:    entry.Quantity,
		LastUpdated: entry.LastUpdated,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

package handler

import (
	"context"
	"errors"
	"time"

	"github.com/tdnguyen94/stocktrail/internal/adapter/handler/pb"
	"github.com/tdnguyen94/stocktrail/internal/core/domain"
	"github.com/tdnguyen94/stocktrail/internal/core/service"
	"github.com/tdnguyen94/stocktrail/internal/port"
)

type GRPCHandler struct {
	pb.UnimplementedStockLedgerServer
	inventory *service.InventoryService
}

func NewGRPCHandler(inventory *service.InventoryService) *GRPCHandler {
	return &GRPCHandler{inventory: inventory}
}

func (h *GRPCHandler) ApplyDelta(ctx context.Context, req *pb.ApplyDeltaRequest) (*pb.MutationResponse, error) {
	principal := domain.Principal{ID: req.GetPrincipalId()}
	entry, err := h.inventory.ApplyDelta(ctx, principal, req.GetProductId(), req.GetDelta(), req.GetRequestId())
	if err != nil {
		return &pb.MutationResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.MutationResponse{Success: true, Message: "ok", Entry: toPBEntry(entry)}, nil
}

func (h *GRPCHandler) SetQuantity(ctx context.Context, req *pb.SetQuantityRequest) (*pb.MutationResponse, error) {
	principal := domain.Principal{ID: req.GetPrincipalId()}
	entry, err := h.inventory.SetQuantity(ctx, principal, req.GetEntryId(), req.GetQuantity())
	if err != nil {
		return &pb.MutationResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.MutationResponse{Success: true, Message: "ok", Entry: toPBEntry(entry)}, nil
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		return "no warehouse assigned"
	case errors.Is(err, service.ErrCrossTenantAccess):
		return "entity belongs to another warehouse"
	case errors.Is(err, service.ErrNotFound):
		return "not found"
	case errors.Is(err, service.ErrDuplicateRequest):
		return "duplicate request"
	case errors.Is(err, service.ErrZeroDelta):
		return "quantity must be non-zero"
	case errors.Is(err, port.ErrConflict):
		return "write conflict, please retry"
	default:
		return "internal error"
	}
}

func toPBEntry(entry *domain.LedgerEntry) *pb.LedgerEntry {
	return &pb.LedgerEntry{
		EntryId:     entry.ID,
		WarehouseId: entry.WarehouseID,
		ProductId:   entry.ProductID,
		Quantity:    entry.Quantity,
		LastUpdated: entry.LastUpdated.Format(time.RFC3339),
	}
}

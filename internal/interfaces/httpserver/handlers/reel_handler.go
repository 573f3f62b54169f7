package handlers

import (
	"context"

	"github.com/janhq/reel-api/internal/domain/reel"
	"github.com/janhq/reel-api/internal/infrastructure/metrics"
	reelreq "github.com/janhq/reel-api/internal/interfaces/httpserver/requests/reel"
)

// ReelHandler handles reel resolution requests.
type ReelHandler struct {
	service reel.Service
}

// NewReelHandler creates a new reel handler.
func NewReelHandler(service reel.Service) *ReelHandler {
	return &ReelHandler{service: service}
}

// ResolveReel resolves the requested link and records the outcome.
func (h *ReelHandler) ResolveReel(ctx context.Context, req *reelreq.ResolveReelRequest) (*reel.Reel, error) {
	var raw any
	if req != nil {
		raw = req.URL
	}
	result, err := h.service.Resolve(ctx, raw)
	metrics.RecordResolution(reel.Outcome(err))
	return result, err
}

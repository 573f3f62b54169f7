package handlers

import (
	"github.com/janhq/reel-api/internal/domain/reel"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Reel *ReelHandler
}

// NewProvider creates a new handler provider.
func NewProvider(reelService reel.Service) *Provider {
	return &Provider{
		Reel: NewReelHandler(reelService),
	}
}

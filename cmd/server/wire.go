//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/janhq/reel-api/internal/config"
	"github.com/janhq/reel-api/internal/domain/reel"
	"github.com/janhq/reel-api/internal/infrastructure/rapidapi"
	"github.com/janhq/reel-api/internal/interfaces"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	rapidapi.NewClientFromConfig,
	wire.Bind(new(reel.Fetcher), new(*rapidapi.Client)),

	// Domain providers
	reel.NewService,

	// Interface providers
	interfaces.InterfacesProvider,

	// Application
	NewApplication,
)

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(cfg *config.Config, log zerolog.Logger) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}

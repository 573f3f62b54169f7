package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/reel-api/internal/interfaces/httpserver/handlers"
	v1 "github.com/janhq/reel-api/internal/interfaces/httpserver/routes/v1"
)

// LegacyReelPath is the unversioned path used by the browser client.
const LegacyReelPath = "/api/reel"

// Provider holds all route providers.
type Provider struct {
	V1       *v1.Routes
	handlers *handlers.Provider
	log      zerolog.Logger
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider, log zerolog.Logger) *Provider {
	return &Provider{
		V1:       v1.NewRoutes(handlerProvider, log),
		handlers: handlerProvider,
		log:      log,
	}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.V1.Register(engine)
	engine.POST(LegacyReelPath, v1.ResolveReelHandler(p.handlers.Reel, p.log))
}

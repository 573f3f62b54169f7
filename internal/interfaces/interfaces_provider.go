package interfaces

import (
	"github.com/google/wire"

	"github.com/janhq/reel-api/internal/interfaces/httpserver"
)

// InterfacesProvider provides all interface dependencies.
var InterfacesProvider = wire.NewSet(
	httpserver.New,
)

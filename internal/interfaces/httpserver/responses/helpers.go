package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/reel-api/internal/utils/platformerrors"
)

// HandleError logs err and writes it as {"error": message} with the mapped status.
func HandleError(c *gin.Context, err error, log zerolog.Logger) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()
	platformerrors.WriteError(c, err, logger)
}

// HandleBadRequest writes a 400 with a fixed message.
func HandleBadRequest(c *gin.Context, message string) {
	platformerrors.WriteValidationError(c, message)
}

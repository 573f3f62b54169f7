package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domainreel "github.com/janhq/reel-api/internal/domain/reel"
	"github.com/janhq/reel-api/internal/interfaces/httpserver/handlers"
	reelreq "github.com/janhq/reel-api/internal/interfaces/httpserver/requests/reel"
	"github.com/janhq/reel-api/internal/interfaces/httpserver/responses"
)

// RegisterReelRoutes registers the reel resolution routes.
func RegisterReelRoutes(router gin.IRoutes, handler *handlers.ReelHandler, log zerolog.Logger) {
	router.POST("/reels", resolveReel(handler, log))
	router.GET("/reels/schema", reelSchema())
}

// resolveReel godoc
// @Summary      Resolve a reel link
// @Description  Validates the link, asks the download API for it and returns the sanitized media list.
// @Tags         Reels
// @Accept       json
// @Produce      json
// @Param        request body reelreq.ResolveReelRequest true "Reel link"
// @Success      200 {object} domainreel.Reel
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /v1/reels [post]
func resolveReel(handler *handlers.ReelHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ShouldBindJSON stops after the first value, so trailing bytes would slip through.
		body, err := c.GetRawData()
		if err != nil || !json.Valid(body) {
			responses.HandleBadRequest(c, domainreel.MsgUnreadableRequest)
			return
		}
		var req reelreq.ResolveReelRequest
		if err := json.Unmarshal(body, &req); err != nil {
			responses.HandleBadRequest(c, domainreel.MsgUnreadableRequest)
			return
		}

		result, err := handler.ResolveReel(c.Request.Context(), &req)
		if err != nil {
			responses.HandleError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// ResolveReelHandler exposes the resolve endpoint for aliases outside /v1.
func ResolveReelHandler(handler *handlers.ReelHandler, log zerolog.Logger) gin.HandlerFunc {
	return resolveReel(handler, log)
}

// reelSchema godoc
// @Summary      Reel payload schema
// @Description  Returns the JSON Schema of a successful resolution response.
// @Tags         Reels
// @Produce      json
// @Success      200 {object} object
// @Router       /v1/reels/schema [get]
func reelSchema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, domainreel.Schema())
	}
}

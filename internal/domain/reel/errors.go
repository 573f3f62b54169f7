package reel

import (
	"context"

	"github.com/janhq/reel-api/internal/utils/platformerrors"
)

// Stable error codes for reel resolution failures.
const (
	CodeValidation          = "reel.validation"
	CodeConfiguration       = "reel.configuration"
	CodeUpstreamUnavailable = "reel.upstream_unavailable"
	CodeUpstreamNotFound    = "reel.upstream_not_found"
	CodeUpstreamError       = "reel.upstream_error"
	CodeNoMedia             = "reel.no_media"
)

// User-facing messages.
const (
	MsgLinkRequired        = "please paste a valid reel link"
	MsgLinkInvalid         = "the link is not in a valid format"
	MsgUnreadableRequest   = "could not read request data"
	MsgMissingCredential   = "server configuration is incomplete, set the RAPIDAPI_KEY environment variable"
	MsgUpstreamUnavailable = "could not fetch reel details, please try again"
	MsgUpstreamNotFound    = "reel not found, check the link"
	MsgUpstreamError       = "failed to fetch reel download links"
	MsgNoMedia             = "no direct download link is available for this reel"
)

// NewValidationError reports a client input fault.
func NewValidationError(ctx context.Context, message string) *platformerrors.PlatformError {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, CodeValidation, message, nil)
}

// NewConfigurationError reports a missing upstream credential.
func NewConfigurationError(ctx context.Context) *platformerrors.PlatformError {
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeInternal, CodeConfiguration, MsgMissingCredential, nil)
}

// NewUpstreamUnavailableError reports that the download API could not be reached.
func NewUpstreamUnavailableError(ctx context.Context, err error) *platformerrors.PlatformError {
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, CodeUpstreamUnavailable, MsgUpstreamUnavailable, err)
}

// NewUpstreamNotFoundError reports that the download API does not know the link.
func NewUpstreamNotFoundError(ctx context.Context, body string) *platformerrors.PlatformError {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeNotFound, CodeUpstreamNotFound, MsgUpstreamNotFound, nil,
		map[string]any{"upstream_status": 404, "upstream_body": body})
}

// NewUpstreamError reports any other upstream failure. Status and body are kept for logs only.
func NewUpstreamError(ctx context.Context, status int, body string, err error) *platformerrors.PlatformError {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, CodeUpstreamError, MsgUpstreamError, err,
		map[string]any{"upstream_status": status, "upstream_body": body})
}

// NewNoMediaError reports that no usable media survived sanitization.
func NewNoMediaError(ctx context.Context, reason string) *platformerrors.PlatformError {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, CodeNoMedia, MsgNoMedia, nil,
		map[string]any{"reason": reason})
}

package reel

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/janhq/reel-api/internal/utils/platformerrors"
)

// Fetcher retrieves the raw upstream document for a validated link.
type Fetcher interface {
	Fetch(ctx context.Context, link string) (json.RawMessage, error)
}

// Service resolves user-submitted links into downloadable media.
type Service interface {
	Resolve(ctx context.Context, raw any) (*Reel, error)
}

type service struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// NewService creates a new reel service.
func NewService(fetcher Fetcher, log zerolog.Logger) Service {
	return &service{
		fetcher: fetcher,
		log:     log.With().Str("component", "reel-service").Logger(),
	}
}

// Resolve validates the link, fetches it upstream and sanitizes the result.
// Every failure is terminal and returned as a PlatformError.
func (s *service) Resolve(ctx context.Context, raw any) (*Reel, error) {
	link, err := ValidateLink(ctx, raw)
	if err != nil {
		return nil, err
	}

	doc, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	result, err := Sanitize(ctx, doc, link)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("link", link).
		Int("medias", len(result.Medias)).
		Msg("reel resolved")

	return result, nil
}

// OutcomeSuccess labels a successful resolution.
const OutcomeSuccess = "success"

// Outcome maps a Resolve result to a short label for metrics.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil && strings.HasPrefix(platformErr.Code, "reel.") {
		return strings.TrimPrefix(platformErr.Code, "reel.")
	}
	return "internal"
}

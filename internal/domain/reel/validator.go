package reel

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateLink trims and checks an untrusted link value.
// It returns the trimmed absolute URL or a validation error carrying the first failure.
func ValidateLink(ctx context.Context, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", NewValidationError(ctx, MsgLinkRequired)
	}

	link := strings.TrimSpace(s)
	if err := validate.Var(link, "required"); err != nil {
		return "", NewValidationError(ctx, MsgLinkRequired)
	}
	if err := validate.Var(link, "url"); err != nil {
		return "", NewValidationError(ctx, MsgLinkInvalid)
	}

	parsed, err := url.Parse(link)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", NewValidationError(ctx, MsgLinkInvalid)
	}

	return link, nil
}

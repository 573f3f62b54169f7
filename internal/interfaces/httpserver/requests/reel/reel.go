// Package reel contains HTTP request DTOs for reel resolution.
package reel

// ResolveReelRequest is the body of a reel resolution request.
// URL stays untyped so a non-string value is reported as an invalid link rather than an unreadable body.
type ResolveReelRequest struct {
	URL any `json:"url" swaggertype:"string" example:"https://www.instagram.com/reel/DCxTlFwSJ_Y/"`
}

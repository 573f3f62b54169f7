package reel

import (
	"context"
	"encoding/json"

	"github.com/samber/lo"
)

// upstreamMedia is the declared shape of one candidate in the upstream media list.
type upstreamMedia struct {
	URL       optional[string]
	Type      optional[string]
	Quality   optional[string]
	Extension optional[string]
}

func (m *upstreamMedia) UnmarshalJSON(data []byte) error {
	return decodeObject(data, map[string]lenientField{
		"url":       &m.URL,
		"type":      &m.Type,
		"quality":   &m.Quality,
		"extension": &m.Extension,
	})
}

// upstreamReel is the declared shape of the upstream document.
type upstreamReel struct {
	URL       optional[string]
	Author    optional[string]
	Title     optional[string]
	Thumbnail optional[string]
	Duration  optional[float64]
	Medias    optional[[]json.RawMessage]
}

func (r *upstreamReel) UnmarshalJSON(data []byte) error {
	return decodeObject(data, map[string]lenientField{
		"url":       &r.URL,
		"author":    &r.Author,
		"title":     &r.Title,
		"thumbnail": &r.Thumbnail,
		"duration":  &r.Duration,
		"medias":    &r.Medias,
	})
}

// toMedia converts a candidate, rejecting it unless url and type are non-empty strings.
func (m upstreamMedia) toMedia() (Media, bool) {
	url, ok := m.URL.Get()
	if !ok || url == "" {
		return Media{}, false
	}
	mediaType, ok := m.Type.Get()
	if !ok || mediaType == "" {
		return Media{}, false
	}
	return Media{
		URL:       url,
		Type:      mediaType,
		Quality:   m.Quality.Ptr(),
		Extension: m.Extension.Ptr(),
	}, true
}

// Sanitize turns a raw upstream document into a Reel.
// Malformed candidates are dropped; an empty result is a NoMedia error.
func Sanitize(ctx context.Context, raw json.RawMessage, fallbackSource string) (*Reel, error) {
	var doc upstreamReel
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, NewNoMediaError(ctx, "upstream document is not an object")
	}

	candidates, _ := doc.Medias.Get()
	if len(candidates) == 0 {
		return nil, NewNoMediaError(ctx, "upstream returned no media")
	}

	medias := lo.FilterMap(candidates, func(item json.RawMessage, _ int) (Media, bool) {
		var candidate upstreamMedia
		if err := json.Unmarshal(item, &candidate); err != nil {
			return Media{}, false
		}
		return candidate.toMedia()
	})
	if len(medias) == 0 {
		return nil, NewNoMediaError(ctx, "no upstream media entry carried a url and type")
	}

	result := &Reel{
		SourceURL: fallbackSource,
		Author:    doc.Author.Ptr(),
		Title:     doc.Title.Ptr(),
		Thumbnail: doc.Thumbnail.Ptr(),
		Medias:    medias,
	}
	if source, ok := doc.URL.Get(); ok && source != "" {
		result.SourceURL = source
	}
	if duration, ok := doc.Duration.Get(); ok && duration >= 0 {
		result.Duration = &duration
	}

	return result, nil
}

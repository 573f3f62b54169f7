package reel

// Media is a downloadable variant proven to carry a url and a type.
type Media struct {
	URL       string  `json:"url" yaml:"url" jsonschema:"minLength=1" example:"https://cdn.example.com/v/720.mp4"`
	Type      string  `json:"type" yaml:"type" jsonschema:"minLength=1" example:"video"`
	Quality   *string `json:"quality,omitempty" yaml:"quality,omitempty" example:"720p"`
	Extension *string `json:"extension,omitempty" yaml:"extension,omitempty" example:"mp4"`
}

// IsVideo reports whether the media is a video variant.
func (m Media) IsVideo() bool {
	return m.Type == MediaTypeVideo
}

// MediaTypeVideo is the type preferred when picking the primary download.
const MediaTypeVideo = "video"

// Reel is the sanitized payload returned for a resolved link.
type Reel struct {
	SourceURL string   `json:"sourceUrl" yaml:"sourceUrl" example:"https://www.instagram.com/reel/DCxTlFwSJ_Y/"`
	Author    *string  `json:"author,omitempty" yaml:"author,omitempty"`
	Title     *string  `json:"title,omitempty" yaml:"title,omitempty"`
	Thumbnail *string  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Duration  *float64 `json:"duration,omitempty" yaml:"duration,omitempty" jsonschema:"minimum=0"`
	Medias    []Media  `json:"medias" yaml:"medias" jsonschema:"minItems=1"`
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/janhq/reel-api/internal/client"
	"github.com/janhq/reel-api/internal/domain/reel"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"

	defaultTitle = "Instagram Reel"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	markerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

func parseFormat(raw string) (outputFormat, error) {
	format := outputFormat(strings.ToLower(strings.TrimSpace(raw)))
	if !lo.Contains([]outputFormat{formatText, formatJSON, formatYAML}, format) {
		return "", fmt.Errorf("unsupported output format %q (use text, json or yaml)", raw)
	}
	return format, nil
}

// fetchOutput is the machine-readable form of a successful lookup.
type fetchOutput struct {
	Reel     *reel.Reel  `json:"reel" yaml:"reel"`
	Best     *reel.Media `json:"best,omitempty" yaml:"best,omitempty"`
	Download string      `json:"download" yaml:"download"`
}

func render(w io.Writer, view client.View, format outputFormat, all bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newFetchOutput(view))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newFetchOutput(view)); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, renderText(view, all))
		return err
	}
}

func newFetchOutput(view client.View) fetchOutput {
	return fetchOutput{
		Reel:     view.Result,
		Best:     view.Best,
		Download: view.DownloadURL(),
	}
}

func renderText(view client.View, all bool) string {
	result := view.Result
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(lo.FromPtrOr(result.Title, defaultTitle)))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Creator", lo.FromPtr(result.Author))
	row("Length", client.FormatDuration(result.Duration))
	if view.Best != nil {
		row("Quality", lo.FromPtr(view.Best.Quality))
	}
	row("Download", linkStyle.Render(view.DownloadURL()))
	row("Source", linkStyle.Render(result.SourceURL))

	if all {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Medias"))
		b.WriteString("\n")
		for _, line := range mediaLines(result.Medias, view.Best) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func mediaLines(medias []reel.Media, best *reel.Media) []string {
	return lo.Map(medias, func(m reel.Media, i int) string {
		marker := " "
		if best != nil && m == *best {
			marker = markerStyle.Render("*")
		}
		details := lo.Compact([]string{m.Type, lo.FromPtr(m.Quality), lo.FromPtr(m.Extension)})
		return fmt.Sprintf("%s %d. [%s] %s", marker, i+1, strings.Join(details, ", "), m.URL)
	})
}

// Package report renders a ranked leaderboard as a text table or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/s0up4200/golfboard/scoring"
	"github.com/s0up4200/golfboard/season"
)

// Format selects the report renderer
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// DefaultPrecision is the number of decimals printed for averages
const DefaultPrecision = 2

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected text or json)", s)
	}
}

// Report is everything a renderer needs
type Report struct {
	Season    string
	MinRounds int
	Players   int
	Filter    string
	Standings []scoring.Standing
	Skipped   []season.Skip
}

// Options controls rendering
type Options struct {
	Precision   int
	ShowSkipped bool
}

// Renderer writes a report to w
type Renderer interface {
	Render(w io.Writer, r *Report) error
}

// New returns the renderer for the given format
func New(format Format, opts Options) (Renderer, error) {
	if opts.Precision < 0 {
		opts.Precision = DefaultPrecision
	}

	switch format {
	case FormatText, "":
		return &TextRenderer{opts: opts}, nil
	case FormatJSON:
		return &JSONRenderer{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

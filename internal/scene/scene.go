// Package scene loads the rectangle scenes consumed by the cmath command.
//
// A scene is a viewport plus a list of rectangles, with optional inputs for
// the individual commands. Scenes may be written as TOML, YAML or JSON:
//
//	viewport = { x = 0, y = 0, width = 800, height = 600 }
//	margin = 50
//
//	[[rects]]
//	x = 10
//	y = 10
//	width = 100
//	height = 40
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/cmath"
)

// ErrUnknownFormat is returned for a file extension with no decoder.
var ErrUnknownFormat = errors.New("scene: unknown format")

// Format identifies a scene encoding.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Rect is a rectangle as written in a scene file.
type Rect struct {
	X      float64 `json:"x" yaml:"x" toml:"x"`
	Y      float64 `json:"y" yaml:"y" toml:"y"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

// Rectangle converts r.
func (r Rect) Rectangle() cmath.Rectangle {
	return cmath.Rect(r.X, r.Y, r.Width, r.Height)
}

// Point is a point as written in a scene file.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Vector converts p.
func (p Point) Vector() cmath.Vector2 {
	return cmath.V2(p.X, p.Y)
}

// Scene is a decoded scene file.
type Scene struct {
	Viewport Rect   `json:"viewport" yaml:"viewport" toml:"viewport"`
	Rects    []Rect `json:"rects" yaml:"rects" toml:"rects"`

	// Selection lists the indices of rects that are being dragged. The
	// remaining rects act as anchors.
	Selection []int `json:"selection,omitempty" yaml:"selection,omitempty" toml:"selection,omitempty"`

	Margin    float64 `json:"margin,omitempty" yaml:"margin,omitempty" toml:"margin,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
	Zoom      float64 `json:"zoom,omitempty" yaml:"zoom,omitempty" toml:"zoom,omitempty"`
	Movement  Point   `json:"movement,omitempty" yaml:"movement,omitempty" toml:"movement,omitempty"`
}

// Rectangles returns the scene rectangles.
func (s *Scene) Rectangles() []cmath.Rectangle {
	out := make([]cmath.Rectangle, len(s.Rects))
	for i, r := range s.Rects {
		out[i] = r.Rectangle()
	}
	return out
}

// Split partitions the scene rectangles into the selection and the anchors.
// An out-of-range selection index is an error.
func (s *Scene) Split() (agents, anchors []cmath.Rectangle, err error) {
	selected := make(map[int]bool, len(s.Selection))
	for _, i := range s.Selection {
		if i < 0 || i >= len(s.Rects) {
			return nil, nil, fmt.Errorf("%w: selection index %d out of range", cmath.ErrInvalidArgument, i)
		}
		selected[i] = true
	}
	for i, r := range s.Rects {
		if selected[i] {
			agents = append(agents, r.Rectangle())
		} else {
			anchors = append(anchors, r.Rectangle())
		}
	}
	return agents, anchors, nil
}

// Load reads and decodes the scene at path.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a scene in the given format.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case JSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &s, nil
}

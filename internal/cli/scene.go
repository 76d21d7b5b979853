package cli

import (
	"fmt"

	"github.com/gogpu/cmath"
	"github.com/gogpu/cmath/internal/scene"
)

// loadScene loads the scene at path and checks it has at least minRects
// rectangles.
func (c *CLI) loadScene(path string, minRects int) (*scene.Scene, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	if len(s.Rects) < minRects {
		return nil, fmt.Errorf("%w: %s needs at least %d rectangles, has %d",
			cmath.ErrInvalidArgument, path, minRects, len(s.Rects))
	}
	c.Logger.Debug("loaded scene", "path", path, "rects", len(s.Rects))
	return s, nil
}

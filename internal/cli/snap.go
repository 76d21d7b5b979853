package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gogpu/cmath"
	"github.com/gogpu/cmath/snap"
	"github.com/gogpu/cmath/spatial"
)

func (c *CLI) snapCommand() *cobra.Command {
	var (
		local        bool
		noSpacing    bool
		corners      bool
		gapTolerance float64
	)

	cmd := &cobra.Command{
		Use:   "snap SCENE",
		Short: "Snap the selected rectangles, moved by the scene movement, to the others",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScene(args[0], 1)
			if err != nil {
				return err
			}
			agents, anchors, err := s.Split()
			if err != nil {
				return err
			}
			if len(agents) == 0 {
				return fmt.Errorf("%w: scene has no selection", cmath.ErrInvalidArgument)
			}

			threshold := s.Threshold
			if threshold == 0 {
				threshold = snap.DragThreshold(s.Zoom)
			}
			movement := s.Movement.Vector()

			if local {
				anchors, err = nearAnchors(agents, anchors, movement, threshold)
				if err != nil {
					return err
				}
				c.Logger.Debug("restricted anchors to neighbours", "anchors", len(anchors))
			}

			opts := []snap.Option{snap.WithSpacingTolerance(gapTolerance)}
			if noSpacing {
				opts = append(opts, snap.WithoutSpacing())
			}
			if corners {
				opts = append(opts, snap.WithoutCenters())
			}
			res, err := snap.Translate(agents, anchors, movement, threshold, opts...)
			if err != nil {
				return err
			}

			p := printer{cmd.OutOrStdout()}
			p.title("snap")
			p.keyValue("threshold", formatFloat(threshold))
			p.keyValue("movement", formatVector(movement))
			p.keyValue("delta", formatVector(res.Delta))
			p.keyValue("anchors x", formatInts(res.AnchorsX))
			p.keyValue("anchors y", formatInts(res.AnchorsY))
			if res.SpacingX.OK() {
				p.success("evenly spaced on x (%s)", formatFloat(res.SpacingX.Distance))
			}
			if res.SpacingY.OK() {
				p.success("evenly spaced on y (%s)", formatFloat(res.SpacingY.Distance))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "only snap to rectangles within the threshold of the selection")
	cmd.Flags().BoolVar(&noSpacing, "no-spacing", false, "disable snapping to evenly spaced positions")
	cmd.Flags().Float64Var(&gapTolerance, "gap-tolerance", snap.GapTolerance, "largest difference between two gaps treated as the same spacing")
	cmd.Flags().BoolVar(&corners, "corners", false, "snap corners only, ignoring edge midpoints and centers")
	return cmd
}

// nearAnchors keeps the anchors within threshold of the moved selection.
func nearAnchors(agents, anchors []cmath.Rectangle, movement cmath.Vector2, threshold float64) ([]cmath.Rectangle, error) {
	bounds, err := cmath.Union(agents...)
	if err != nil {
		return nil, err
	}
	idx := spatial.New(anchors...)
	near := idx.Near(bounds.Translate(movement), threshold)
	return lo.Map(near, func(i int, _ int) cmath.Rectangle { return idx.Rect(i) }), nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/cmath"
	"github.com/gogpu/cmath/pack"
)

func (c *CLI) packCommand() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "pack SCENE",
		Short: "Find a free spot in the viewport for a rectangle of the given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScene(args[0], 0)
			if err != nil {
				return err
			}
			p := printer{cmd.OutOrStdout()}
			p.title("pack")

			r, ok := pack.Fit(s.Viewport.Rectangle(), cmath.V2(width, height), s.Rectangles())
			if !ok {
				p.warning("no free region fits %sx%s", formatFloat(width), formatFloat(height))
				return nil
			}
			p.success("placed at %s", formatRect(r))
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "width of the rectangle to place")
	cmd.Flags().Float64Var(&height, "height", 0, "height of the rectangle to place")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/cmath"
	"github.com/gogpu/cmath/spatial"
)

func (c *CLI) hitCommand() *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "hit SCENE",
		Short: "List the rectangles under a point, topmost last",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScene(args[0], 0)
			if err != nil {
				return err
			}
			pt := cmath.V2(x, y)
			hits := spatial.New(s.Rectangles()...).At(pt)

			p := printer{cmd.OutOrStdout()}
			p.title("hit")
			p.keyValue("point", formatVector(pt))
			p.keyValue("rects", formatInts(hits))
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "y coordinate")
	return cmd
}

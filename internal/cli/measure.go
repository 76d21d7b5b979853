package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/cmath"
)

func (c *CLI) measureCommand() *cobra.Command {
	var a, b int

	cmd := &cobra.Command{
		Use:   "measure SCENE",
		Short: "Measure the spacing between two rectangles of the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScene(args[0], 2)
			if err != nil {
				return err
			}
			rects := s.Rectangles()
			for _, i := range []int{a, b} {
				if i < 0 || i >= len(rects) {
					return fmt.Errorf("%w: rectangle index %d out of range", cmath.ErrInvalidArgument, i)
				}
			}

			p := printer{cmd.OutOrStdout()}
			p.title("measure")
			m, ok := cmath.Measure(rects[a], rects[b])
			if !ok {
				p.warning("rectangles %d and %d are identical", a, b)
				return nil
			}
			p.keyValue("box", formatRect(m.Box))
			for i, side := range []string{"top", "right", "bottom", "left"} {
				p.keyValue(side, formatFloat(m.Distance[i]))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&a, "a", 0, "index of the first rectangle")
	cmd.Flags().IntVar(&b, "b", 1, "index of the second rectangle")
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/cmath"
)

func (c *CLI) fitCommand() *cobra.Command {
	var margin float64

	cmd := &cobra.Command{
		Use:   "fit SCENE",
		Short: "Compute the transform that fits all rectangles into the viewport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScene(args[0], 1)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("margin") {
				margin = s.Margin
			}
			target, err := cmath.Union(s.Rectangles()...)
			if err != nil {
				return err
			}
			t, err := cmath.FitMargin(s.Viewport.Rectangle(), target, margin)
			if err != nil {
				return err
			}

			p := printer{cmd.OutOrStdout()}
			p.title("fit")
			p.keyValue("target", formatRect(target))
			p.keyValue("scale", formatFloat(t.Scale().X))
			p.keyValue("translate", formatVector(t.Translation()))
			p.keyValue("result", formatRect(target.TransformBy(t)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&margin, "margin", 0, "margin kept free on every side of the viewport (overrides the scene)")
	return cmd
}

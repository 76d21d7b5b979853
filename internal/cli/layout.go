package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/cmath/layout"
)

func (c *CLI) layoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout SCENE",
		Short: "Guess the flex layout that reproduces the rectangles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScene(args[0], 1)
			if err != nil {
				return err
			}
			res, err := layout.Guess(s.Rectangles())
			if err != nil {
				return err
			}

			p := printer{cmd.OutOrStdout()}
			p.title("layout")
			p.keyValue("direction", res.Direction.String())
			p.keyValue("spacing", formatFloat(res.Spacing))
			p.keyValue("alignment", res.Alignment.String())
			p.keyValue("order", formatInts(res.Order))
			p.keyValue("bounds", formatRect(res.Bounds))
			return nil
		},
	}
}

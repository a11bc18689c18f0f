package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/lazygrid/internal/tui/gridview"
)

// ErrNotTerminal is returned by view when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("view requires an interactive terminal; use 'lazygrid render' instead")

func newViewCmd(s *session) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a grid interactively",
		Long: `Opens a scrollable viewport over the grid. Only the cells inside the
viewport, plus the configured buffer, are rendered on each frame.

Keys: arrows or hjkl scroll one item, pgup/pgdn one page, home/end jump to the
top or bottom, 0/$ to the first or last column. The mouse wheel scrolls
vertically, or horizontally with shift.`,
		Example: `  lazygrid view --generate 100000
  lazygrid view --data matrix.yaml --transpose --buffer 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			data, title, err := loadSource(src)
			if err != nil {
				return err
			}

			g, err := buildGrid(cmd.Context(), s, data)
			if err != nil {
				return err
			}
			defer g.Close()

			m, err := gridview.NewModel(g, title)
			if err != nil {
				return err
			}
			return gridview.Run(cmd.Context(), m)
		},
	}

	src.register(cmd)
	return cmd
}

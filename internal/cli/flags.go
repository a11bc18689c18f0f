package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/lazygrid/internal/config"
)

// gridFlags are persistent flags that override the grid section of the config.
type gridFlags struct {
	width      string
	height     string
	itemWidth  float64
	itemHeight float64
	buffer     int
	transpose  bool
}

func (f *gridFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.width, "width", "", "viewport width, e.g. 80 or 80px")
	pf.StringVar(&f.height, "height", "", "viewport height, e.g. 24 or 24px")
	pf.Float64Var(&f.itemWidth, "item-width", 0, "width of one item")
	pf.Float64Var(&f.itemHeight, "item-height", 0, "height of one item")
	pf.IntVar(&f.buffer, "buffer", 0, "extra rows and columns rendered beyond the viewport")
	pf.BoolVar(&f.transpose, "transpose", false, "swap rows and columns")
}

// apply copies explicitly set flags onto cfg. Flags override environment
// variables and the config file.
func (f *gridFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Grid.Height = f.height
	}
	if flags.Changed("item-width") {
		cfg.Grid.ItemWidth = f.itemWidth
	}
	if flags.Changed("item-height") {
		cfg.Grid.ItemHeight = f.itemHeight
	}
	if flags.Changed("buffer") {
		cfg.Grid.Buffer = f.buffer
	}
	if flags.Changed("transpose") {
		cfg.Grid.Transpose = f.transpose
	}
}

// sourceFlags select the data shown by view and render.
type sourceFlags struct {
	data     string
	generate string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.data, "data", "", "YAML or JSON file holding a list or a list of lists")
	cmd.Flags().StringVar(&f.generate, "generate", "1000x20", "synthetic grid: N items or ROWSxCOLS")
	cmd.MarkFlagsMutuallyExclusive("data", "generate")
}

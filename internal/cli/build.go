package cli

import (
	"context"
	"fmt"

	"github.com/rshade/lazygrid/internal/dataset"
	"github.com/rshade/lazygrid/internal/grid"
	"github.com/rshade/lazygrid/internal/lazygrid"
	"github.com/rshade/lazygrid/internal/logging"
)

// loadSource returns the grid data selected by f and a short description.
func loadSource(f sourceFlags) (grid.Source[any], string, error) {
	if f.data != "" {
		src, err := dataset.LoadFile(f.data)
		if err != nil {
			return grid.Source[any]{}, "", err
		}
		return src, f.data, nil
	}

	rows, cols, err := dataset.ParseDims(f.generate)
	if err != nil {
		return grid.Source[any]{}, "", fmt.Errorf("--generate %q: %w", f.generate, err)
	}
	return dataset.Generate(rows, cols), "generated " + f.generate, nil
}

// buildGrid creates a WindowedGrid over src using the session's config.
func buildGrid(ctx context.Context, s *session, src grid.Source[any]) (*lazygrid.WindowedGrid[any], error) {
	g := s.cfg.Grid
	logger := logging.FromContext(ctx)

	wg, err := lazygrid.New(lazygrid.Options[any]{
		Source:     src,
		Renderer:   dataset.Format,
		Width:      g.Width,
		Height:     g.Height,
		ItemWidth:  g.ItemWidth,
		ItemHeight: g.ItemHeight,
		Buffer:     g.Buffer,
		Transpose:  g.Transpose,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}

	if wg.Ragged() {
		logger.Warn().Msg("rows have unequal lengths; every row was truncated to the shortest one")
	}
	return wg, nil
}

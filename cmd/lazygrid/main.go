package main

import (
	"fmt"
	"os"

	"github.com/rshade/lazygrid/internal/cli"
	"github.com/rshade/lazygrid/pkg/version"
)

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

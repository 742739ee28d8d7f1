package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/hyprpier/cmd/hyprpier"
	"github.com/arthur-debert/hyprpier/pkg/style"
)

func main() {
	rootCmd := hyprpier.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(style.FormatAuto, os.Stderr)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}

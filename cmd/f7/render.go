package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	f7 "github.com/lamarque/go-f7"
	"github.com/lamarque/go-f7/internal/preview"
)

var renderCmd = &cobra.Command{
	Use:   "render [single|tabs|split|inputs]",
	Short: "Render a demo layout document to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var build func(f7.Config) *f7.Node
		switch args[0] {
		case "single":
			build = preview.SinglePage
		case "tabs":
			build = preview.TabsPage
		case "split":
			build = preview.SplitPage
		case "inputs":
			build = preview.InputsPage
		default:
			return fmt.Errorf("unknown layout %q", args[0])
		}

		return f7.RenderDocument(os.Stdout, f7.AppShell(cfg, build(cfg)))
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	f7 "github.com/lamarque/go-f7"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Write the PWA web-app manifest to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		body, err := f7.Manifest(cfg)
		if err != nil {
			return err
		}
		fmt.Println(string(body))
		return nil
	},
}

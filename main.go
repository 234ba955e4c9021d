package main

import (
	"fmt"
	"os"

	"github.com/rimu-dev/xbrew/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xbrew",
	Short: "xbrew - A CLI for the xBloom recipe cloud.",
	Long: `xbrew is a command-line client for the xBloom coffee machine's recipe cloud.
It can fetch publicly shared recipes, and create or list your own recipes
once you are logged in.

Usage:
  xbrew <command> [flags]

Available Commands:
  auth       Log in and manage stored credentials
  recipes    Fetch, create, and list recipes

Run 'xbrew help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("xbrew", "alligator2", "green", true)
		banner.Print()
		fmt.Println("Run 'xbrew --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.AuthCmd)
	rootCmd.AddCommand(cmd.RecipesCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

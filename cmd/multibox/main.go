// Multibox is a tabbed terminal demo: a greeting, a live clock, a folder
// listing and a style panel whose font and color apply to every tab.
//
// Usage:
//
//	multibox [flags]
//
// See 'multibox --help' for available flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/multibox/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "multibox",
	Short: "Tabbed terminal demo",
	Long: `A tabbed terminal window with four tabs:

  Hello World  a static greeting
  Clock        the local time, updated every second
  Read File    the files of a chosen folder with their sizes
  Style        font size and text color sliders shared by all tabs

Switch tabs with tab/shift+tab or 1-4. Press q to quit.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("multibox %s\n", version.Full())
	},
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the slidescribe application
var rootCmd = &cobra.Command{
	Use:   "slidescribe",
	Short: "MCP server for the Google Slides API",
	Long: `slidescribe exposes Google Slides operations as Model Context Protocol
(MCP) tools: create presentations, fetch presentations and pages, apply
batch updates and derive text summaries of slide decks.

It authenticates to Google with a pre-provisioned OAuth refresh token and
serves MCP clients over stdio or streamable HTTP.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "slidescribe version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}

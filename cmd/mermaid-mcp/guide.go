package main

import (
	"fmt"
	"os"

	mcpadapter "github.com/aretw0/mermaid-mcp/internal/adapters/mcp"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the Mermaid syntax guide",
	Long:  `Prints the bundled Mermaid syntax guide, rendered for the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		)
		if err != nil {
			// Fall back to the raw markdown when the terminal profile fails.
			fmt.Print(mcpadapter.SyntaxGuide + "\n")
			return
		}

		out, err := r.Render(mcpadapter.SyntaxGuide)
		if err != nil {
			fmt.Print(mcpadapter.SyntaxGuide + "\n")
			return
		}
		fmt.Fprint(os.Stdout, out)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

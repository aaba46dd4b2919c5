package main

import (
	"fmt"
	"os"

	"github.com/aretw0/mermaid-mcp/pkg/diagram"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check whether a file contains valid Mermaid syntax",
	Long: `Inspects the input and reports the detected diagram family.
Reads from stdin when no file is given or when the file is '-'.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := termenv.ColorProfile()

		source, err := readSource(args)
		if err != nil {
			fmt.Println(termenv.String(fmt.Sprintf("Validation failed: %v", err)).Foreground(p.Color("#f87171")))
			os.Exit(1)
		}

		result := diagram.Inspect(diagram.Extract(source))
		if !result.Valid {
			fmt.Println(termenv.String("Validation failed: " + result.Reason).Foreground(p.Color("#f87171")))
			os.Exit(1)
		}
		fmt.Println(termenv.String(fmt.Sprintf("Diagram is valid (%s)! ✅", result.Kind)).Foreground(p.Color("#4ade80")))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

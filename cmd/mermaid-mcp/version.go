package main

import (
	"fmt"
	"strings"

	mermaidmcp "github.com/aretw0/mermaid-mcp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mermaid-mcp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mermaid-mcp version %s\n", strings.TrimSpace(mermaidmcp.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

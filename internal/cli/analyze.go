package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/analyzer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show the session analysis without generating a message",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := setup()
		if err != nil {
			return err
		}
		analysis := buildAnalysis(cfg, client)
		fmt.Print(analyzer.Format(analysis))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

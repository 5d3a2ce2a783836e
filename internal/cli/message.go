package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Print the generated commit message without committing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := setup()
		if err != nil {
			return err
		}
		analysis := buildAnalysis(cfg, client)
		fmt.Println(newComposer(cfg).Generate(analysis))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(messageCmd)
}

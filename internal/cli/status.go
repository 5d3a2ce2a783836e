package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/analyzer"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the staged and unstaged change sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := setup()
		if err != nil {
			return err
		}

		staged, err := client.StagedChanges()
		if err != nil {
			return err
		}
		unstaged, err := client.UnstagedChanges()
		if err != nil {
			return err
		}

		fmt.Print(formatChangeSet("Staged", staged))
		fmt.Print(formatChangeSet("Unstaged", unstaged))
		return nil
	},
}

func formatChangeSet(label string, cs analyzer.FileChangeSet) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%d)\n", label, cs.Total()))
	for _, f := range cs.Added {
		sb.WriteString(fmt.Sprintf("   A  %s\n", f))
	}
	for _, f := range cs.Modified {
		sb.WriteString(fmt.Sprintf("   M  %s\n", f))
	}
	for _, f := range cs.Deleted {
		sb.WriteString(fmt.Sprintf("   D  %s\n", f))
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

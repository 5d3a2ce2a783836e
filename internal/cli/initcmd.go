package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default gitagent.json to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "gitagent.json"
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

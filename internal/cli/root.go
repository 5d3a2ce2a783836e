// Package cli wires the analyzer, composer, and git layers into the
// gitagent command tree.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagTranscript string
	flagYes        bool
	flagPush       bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gitagent",
	Short: "Generate a commit message from the current coding session and commit",
	Long: `gitagent reads the most recent coding-session transcript (or, when none
exists, the repository status), synthesizes a commit message from it, lets
you review and edit the message, then stages and commits the change.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Local .env may carry GITAGENT_* overrides; absence is fine.
		_ = godotenv.Load()

		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
	RunE: runCommit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to gitagent.json")
	rootCmd.PersistentFlags().StringVar(&flagTranscript, "transcript", "", "Path to a session transcript (JSONL)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the interactive preview")
	rootCmd.Flags().BoolVar(&flagPush, "push", false, "Push after committing (overrides config)")
}

// Execute runs the command tree. It returns a process exit code: 0 for
// success or a clean no-op, 1 for any failure.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

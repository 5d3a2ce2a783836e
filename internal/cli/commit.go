package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/analyzer"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/composer"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/config"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/git"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/preview"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/transcript"
)

func runCommit(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}

	analysis := buildAnalysis(cfg, client)
	message := newComposer(cfg).Generate(analysis)

	if !flagYes && term.IsTerminal(int(os.Stdin.Fd())) {
		res, err := preview.Run(message)
		if err != nil {
			return err
		}
		if res.Action == preview.ActionCancel {
			fmt.Println("Aborted, nothing committed.")
			return nil
		}
		if res.Message != "" {
			message = res.Message
		}
	}

	if out, err := client.AddAll(); err != nil {
		return gitFailure(cfg, "add", out, err)
	}

	out, err := client.Commit(message)
	if errors.Is(err, git.ErrNothingToCommit) {
		fmt.Println("Nothing to commit.")
		return nil
	}
	if err != nil {
		return gitFailure(cfg, "commit", out, err)
	}
	fmt.Println(out)

	if cfg.AutoPush || flagPush {
		branch := cfg.TargetBranch
		if branch == "" {
			if branch, err = client.CurrentBranch(); err != nil {
				return err
			}
		}
		if out, err := client.Push(branch); err != nil {
			return gitFailure(cfg, "push", out, err)
		}
		fmt.Printf("Pushed to %s.\n", branch)
	}

	return nil
}

func setup() (*config.Config, *git.Client, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	client := git.NewClient("")
	if !client.IsRepo() {
		return nil, nil, errors.New("not a git repository")
	}
	return cfg, client, nil
}

func newComposer(cfg *config.Config) *composer.Composer {
	return composer.New(composer.Options{
		Lang:               cfg.Lang(),
		MaxTitleLength:     cfg.MaxTitleLength,
		Templates:          cfg.Templates,
		IncludeFileChanges: cfg.IncludeFileChanges,
	})
}

// buildAnalysis analyzes the session transcript when one can be found, and
// falls back to repository status otherwise. The transcript-derived change
// set is preferred; the status-derived one substitutes only when the former
// is entirely empty.
func buildAnalysis(cfg *config.Config, client *git.Client) analyzer.Analysis {
	a := analyzer.New(cfg.Lang(), client)
	analysis := a.Analyze(loadEvents())

	if analysis.FilesChanged.Empty() {
		if cs, err := client.UnstagedChanges(); err == nil {
			analysis.FilesChanged = a.ExpandDirectories(cs)
		}
	}
	return analysis
}

// loadEvents resolves and reads the session transcript. A nil return means
// no transcript is available, which is not an error.
func loadEvents() []transcript.Event {
	path := flagTranscript
	if path == "" {
		path = os.Getenv("GITAGENT_TRANSCRIPT")
	}
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		path, err = transcript.Discover(transcript.DataDir(), cwd)
		if err != nil {
			logrus.Debug("no transcript found, using repository status")
			return nil
		}
	}

	events, err := transcript.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Warn("transcript unreadable, using repository status")
		return nil
	}
	logrus.WithField("path", path).Debugf("loaded %d events", len(events))
	return events
}

// gitFailure prints the git output and a categorized remediation hint, then
// returns the run failure.
func gitFailure(cfg *config.Config, op, out string, err error) error {
	if out != "" {
		fmt.Fprintln(os.Stderr, out)
	}
	cat := git.Categorize(out)
	fmt.Fprintln(os.Stderr, git.Hint(cfg.Lang(), cat))
	return fmt.Errorf("git %s failed (%s): %w", op, cat, err)
}

package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Client runs git commands in a single working directory. All repository
// access goes through the git binary in the surrounding environment.
type Client struct {
	dir string
}

// NewClient creates a client for the repository at dir ("" = process cwd).
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// ErrNothingToCommit is returned by Commit when the index is empty.
var ErrNothingToCommit = errors.New("nothing to commit")

// run executes git with the given arguments and returns combined output.
func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	logrus.WithField("args", args).Debug("git")
	if err != nil {
		return output, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return output, nil
}

// IsRepo reports whether the directory is inside a git work tree.
func (c *Client) IsRepo() bool {
	out, err := c.run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// CurrentBranch returns the checked-out branch name.
func (c *Client) CurrentBranch() (string, error) {
	return c.run("rev-parse", "--abbrev-ref", "HEAD")
}

// AddAll stages every change in the work tree.
func (c *Client) AddAll() (string, error) {
	return c.run("add", "-A")
}

// Commit records the staged changes with the given message.
// An empty index yields ErrNothingToCommit rather than a failure.
func (c *Client) Commit(message string) (string, error) {
	out, err := c.run("commit", "-m", message)
	if err != nil && strings.Contains(strings.ToLower(out), "nothing to commit") {
		return out, ErrNothingToCommit
	}
	return out, err
}

// Push publishes the current branch to origin. A non-empty branch pushes
// that ref explicitly.
func (c *Client) Push(branch string) (string, error) {
	if branch == "" {
		return c.run("push")
	}
	return c.run("push", "origin", branch)
}

package git

import (
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/analyzer"
)

// StagedChanges partitions the index (changes marked for the next commit)
// into added/modified/deleted buckets.
func (c *Client) StagedChanges() (analyzer.FileChangeSet, error) {
	out, err := c.run("status", "--porcelain")
	if err != nil {
		return analyzer.FileChangeSet{}, err
	}
	return parseStatus(out, true), nil
}

// UnstagedChanges partitions the work tree (including untracked entries,
// which git reports per-directory) the same way.
func (c *Client) UnstagedChanges() (analyzer.FileChangeSet, error) {
	out, err := c.run("status", "--porcelain")
	if err != nil {
		return analyzer.FileChangeSet{}, err
	}
	return parseStatus(out, false), nil
}

// ListUntrackedUnder expands an untracked directory entry into the files
// it contains.
func (c *Client) ListUntrackedUnder(path string) ([]string, error) {
	out, err := c.run("ls-files", "--others", "--exclude-standard", "--", path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// parseStatus reads porcelain output. Column X is the index status,
// column Y the work-tree status; "??" marks an untracked entry.
func parseStatus(out string, staged bool) analyzer.FileChangeSet {
	var cs analyzer.FileChangeSet
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		x, y := line[0], line[1]
		path := strings.TrimSpace(line[3:])
		// Renames are reported as "old -> new"; keep the new path.
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+4:]
		}
		path = strings.Trim(path, `"`)

		code := x
		if !staged {
			code = y
			if x == '?' && y == '?' {
				code = 'A'
			} else if x == '?' || y == '?' {
				continue
			}
		} else if x == '?' {
			continue
		}

		switch code {
		case 'A', 'C':
			cs.Added = append(cs.Added, path)
		case 'M', 'R', 'T', 'U':
			cs.Modified = append(cs.Modified, path)
		case 'D':
			cs.Deleted = append(cs.Deleted, path)
		}
	}
	return cs
}

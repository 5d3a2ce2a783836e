package composer

import (
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/analyzer"
	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
)

// ChangeType is the coarse classification of a change's nature; it drives
// template selection.
type ChangeType string

const (
	Fix      ChangeType = "fix"
	Refactor ChangeType = "refactor"
	Docs     ChangeType = "docs"
	Feat     ChangeType = "feat"
)

// Options configures a Composer.
type Options struct {
	Lang           locale.Lang
	MaxTitleLength int
	// Templates overrides the built-in message templates, keyed by
	// language then change type.
	Templates map[string]map[string]string
	// IncludeFileChanges controls the changed-files listing in the body.
	IncludeFileChanges bool
}

// Composer renders a SessionAnalysis into a commit message.
type Composer struct {
	lang     locale.Lang
	maxTitle int
	tmpl     map[string]map[string]string
	files    bool
}

// New creates a composer. A zero MaxTitleLength defaults to 72.
func New(opts Options) *Composer {
	maxTitle := opts.MaxTitleLength
	if maxTitle <= 0 {
		maxTitle = 72
	}
	return &Composer{
		lang:     opts.Lang,
		maxTitle: maxTitle,
		tmpl:     opts.Templates,
		files:    opts.IncludeFileChanges,
	}
}

// Generate produces the final message for an analysis. It always returns a
// non-empty string: every sub-step degrades to a fallback value instead of
// failing.
func (c *Composer) Generate(a analyzer.Analysis) string {
	ct := c.Classify(a)
	title := c.title(a)
	body := c.body(a)
	if body == "" {
		body = locale.T(c.lang, "fallback.body")
	}

	tmpl := c.template(ct)
	msg := strings.ReplaceAll(tmpl, "{summary}", title)
	msg = strings.ReplaceAll(msg, "{details}", body)
	return strings.TrimSpace(msg)
}

// Keyword cues for change classification. Checked against the lowercased
// user request; fix wins over refactor when both match.
var (
	fixCues      = []string{"bug", "fix", "error", "修正", "バグ", "不具合", "エラー"}
	refactorCues = []string{"refactor", "restructur", "cleanup", "clean up", "リファクタ", "整理"}
)

// fileTools are the tools whose FilePath is a repository path.
var fileTools = map[string]bool{
	"Write": true, "Edit": true, "Delete": true, "MultiEdit": true,
	"NotebookEdit": true, "NotebookWrite": true, "Read": true,
}

// Classify determines the change type: fix and refactor cues in the user
// request take priority, then documentation-only operations, then feat.
func (c *Composer) Classify(a analyzer.Analysis) ChangeType {
	lower := strings.ToLower(a.UserRequest)
	for _, cue := range fixCues {
		if strings.Contains(lower, cue) {
			return Fix
		}
	}
	for _, cue := range refactorCues {
		if strings.Contains(lower, cue) {
			return Refactor
		}
	}
	if docsOnly(a.Operations) {
		return Docs
	}
	return Feat
}

var docSuffixes = []string{".md", ".txt", ".rst", ".doc", ".docx"}

// docsOnly reports whether every operation touched a documentation file.
// Any operation without a documentation path, such as a shell command or a
// search, disqualifies the whole set.
func docsOnly(ops []analyzer.Operation) bool {
	if len(ops) == 0 {
		return false
	}
	for _, op := range ops {
		if !hasDocSuffix(op.FilePath) {
			return false
		}
	}
	return true
}

func hasDocSuffix(path string) bool {
	lower := strings.ToLower(path)
	for _, suf := range docSuffixes {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}

func (c *Composer) template(ct ChangeType) string {
	if byLang, ok := c.tmpl[string(c.lang)]; ok {
		if t, ok := byLang[string(ct)]; ok && t != "" {
			return t
		}
	}
	return locale.Template(c.lang, string(ct))
}

// truncate caps s at max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

package git

import (
	"strings"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
)

// Category classifies a failed git operation for remediation hints.
type Category string

const (
	CategoryPermission Category = "permission"
	CategoryIdentity   Category = "identity"
	CategoryRejected   Category = "rejected"
	CategoryUpstream   Category = "upstream"
	CategoryNetwork    Category = "network"
	CategoryUnknown    Category = "unknown"
)

// categoryRule matches git output against a failure category, first match
// wins.
type categoryRule struct {
	substr   string
	category Category
}

var categoryRules = []categoryRule{
	{"permission denied", CategoryPermission},
	{"insufficient permission", CategoryPermission},
	{"please tell me who you are", CategoryIdentity},
	{"user.name", CategoryIdentity},
	{"user.email", CategoryIdentity},
	{"non-fast-forward", CategoryRejected},
	{"fetch first", CategoryRejected},
	{"rejected", CategoryRejected},
	{"no upstream branch", CategoryUpstream},
	{"src refspec", CategoryUpstream},
	{"does not appear to be a git repository", CategoryUpstream},
	{"could not resolve host", CategoryNetwork},
	{"connection refused", CategoryNetwork},
	{"connection timed out", CategoryNetwork},
	{"operation timed out", CategoryNetwork},
	{"network is unreachable", CategoryNetwork},
}

// Categorize maps a failed command's output to a failure category.
func Categorize(output string) Category {
	lower := strings.ToLower(output)
	for _, r := range categoryRules {
		if strings.Contains(lower, r.substr) {
			return r.category
		}
	}
	return CategoryUnknown
}

// Hint returns the localized remediation hint for a category.
func Hint(lang locale.Lang, cat Category) string {
	return locale.T(lang, "hint."+string(cat))
}

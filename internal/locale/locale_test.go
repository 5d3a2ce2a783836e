package locale

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]Lang{
		"en":       English,
		"EN":       English,
		"ja":       Japanese,
		"jp":       Japanese,
		"Japanese": Japanese,
		"":         English,
		"fr":       English,
	}
	for code, want := range cases {
		if got := Normalize(code); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestT_BothLanguages(t *testing.T) {
	if got := T(English, "fallback.body"); got != "general update" {
		t.Errorf("T(en, fallback.body) = %q", got)
	}
	if got := T(Japanese, "fallback.body"); got != "ファイル更新" {
		t.Errorf("T(ja, fallback.body) = %q", got)
	}
}

func TestT_MissingKeyFallsBack(t *testing.T) {
	if got := T(Japanese, "no.such.key"); got != "no.such.key" {
		t.Errorf("T on unknown key = %q, want the key itself", got)
	}
}

func TestT_EveryEnglishKeyHasJapanese(t *testing.T) {
	for key := range texts[English] {
		if _, ok := texts[Japanese][key]; !ok {
			t.Errorf("key %q missing from Japanese table", key)
		}
	}
	for key := range texts[Japanese] {
		if _, ok := texts[English][key]; !ok {
			t.Errorf("key %q missing from English table", key)
		}
	}
}

func TestActionVerb(t *testing.T) {
	if got := ActionVerb(English, "Write"); got != "create" {
		t.Errorf("ActionVerb(en, Write) = %q, want %q", got, "create")
	}
	if got := ActionVerb(Japanese, "Write"); got != "作成" {
		t.Errorf("ActionVerb(ja, Write) = %q, want %q", got, "作成")
	}
	// Unknown tools fall back to the tool name
	if got := ActionVerb(English, "Mystery"); got != "Mystery" {
		t.Errorf("ActionVerb(en, Mystery) = %q", got)
	}
}

func TestTemplate_HasPlaceholders(t *testing.T) {
	for _, lang := range []Lang{English, Japanese} {
		for _, ct := range []string{"feat", "fix", "docs", "refactor"} {
			tmpl := Template(lang, ct)
			if !strings.Contains(tmpl, "{summary}") || !strings.Contains(tmpl, "{details}") {
				t.Errorf("Template(%s, %s) = %q, missing placeholders", lang, ct, tmpl)
			}
		}
	}
}

func TestTemplate_UnknownType(t *testing.T) {
	tmpl := Template(English, "chore")
	if !strings.Contains(tmpl, "{summary}") {
		t.Errorf("Template for unknown type = %q, want generic template", tmpl)
	}
}

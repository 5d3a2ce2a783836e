package locale

import "strings"

// Lang identifies a supported output language
type Lang string

const (
	English  Lang = "en"
	Japanese Lang = "ja"
)

// Normalize maps a configured language code to a supported Lang.
// Unknown codes fall back to English.
func Normalize(code string) Lang {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "ja", "jp", "japanese":
		return Japanese
	default:
		return English
	}
}

// texts is the per-language lookup table, indexed by language and concept key.
// Keeping every user-visible string here avoids drift between language variants.
var texts = map[Lang]map[string]string{
	English: {
		"header.work":    "## Work performed",
		"header.other":   "## Other operations",
		"header.files":   "## Changed files",
		"header.rollup":  "## Change summary",
		"header.request": "## Request",
		"header.notes":   "## Notes",

		"files.added":    "Added",
		"files.modified": "Modified",
		"files.deleted":  "Deleted",

		"summary.ops":    "%d operations executed",
		"summary.counts": "added %d, modified %d, deleted %d",

		"request.docs":  "documentation work",
		"request.tests": "test work",
		"request.files": "file work",

		"fallback.body": "general update",

		"title.create":       "create %s",
		"title.improve":      "improve %s",
		"title.fix":          "fix %s issues",
		"title.update":       "update %s",
		"title.file.created": "%s created",
		"title.file.updated": "%s updated",
		"title.batch":        "%[1]d %[2]s files %[3]s",
		"title.batch.mixed":  "%[3]s %[1]d files (mixed)",
		"title.lastresort":   "%d files updated",

		"batch.verb.created": "created",
		"batch.verb.updated": "updated",
		"batch.verb.deleted": "deleted",

		"category.docs":  "documentation",
		"category.tests": "test",
		"category.code":  "code",

		"rollup.ops":   "Operations: %d",
		"rollup.files": "Files touched: %d",

		"label.tests":  "tests",
		"label.readme": "README",
		"label.docs":   "documentation",
		"label.html":   "HTML file",
		"label.styles": "stylesheet",
		"label.script": "script",
		"label.python": "Python code",
		"label.gocode": "Go code",
		"label.config": "configuration",
		"label.fixes":  "fixes",

		"op.html":       "HTML file",
		"op.python":     "Python script",
		"op.config":     "config/data file",
		"op.file":       "file creation",
		"op.large":      "large change",
		"op.partial":    "partial change",
		"op.git.commit": "git commit",
		"op.git.push":   "git push",
		"op.git.status": "git status",
		"op.git":        "git operation",
		"op.pkg":        "package management",
		"op.sys":        "system command",

		"detail.type":    "file type: %s",
		"detail.lines":   "%d lines added",
		"detail.removed": "%d lines removed",
		"detail.edits":   "%d edits",
		"detail.total":   "%d lines changed",
		"detail.size":    "%d characters",

		"feature.form":    "form elements",
		"feature.table":   "table layout",
		"feature.nav":     "navigation",
		"feature.style":   "inline styles",
		"feature.script":  "embedded script",
		"feature.media":   "responsive styles",
		"feature.imports": "%d imports",
		"feature.classes": "%d classes",
		"feature.funcs":   "%d functions",
		"feature.jsfunc":  "function definitions",
		"feature.events":  "event handling",
		"feature.api":     "API calls",
		"feature.hooks":   "React hooks",

		"change.addition":    "large addition",
		"change.deletion":    "large deletion",
		"change.bugfix":      "bug fix",
		"change.improvement": "improvement",
		"change.general":     "general update",

		"hint.permission": "Check repository permissions (file ownership, .git directory access).",
		"hint.identity":   "Set your identity: git config user.name / git config user.email.",
		"hint.rejected":   "Push rejected: pull or rebase onto the remote branch first.",
		"hint.upstream":   "No matching remote branch: push with --set-upstream once.",
		"hint.network":    "Network problem: check connectivity and the remote URL.",
		"hint.unknown":    "Inspect the git output above for details.",
	},
	Japanese: {
		"header.work":    "## 実施した作業",
		"header.other":   "## その他の操作",
		"header.files":   "## 変更ファイル",
		"header.rollup":  "## 変更概要",
		"header.request": "## 依頼内容",
		"header.notes":   "## 補足",

		"files.added":    "追加",
		"files.modified": "変更",
		"files.deleted":  "削除",

		"summary.ops":    "%d件の操作を実行",
		"summary.counts": "追加%d件、変更%d件、削除%d件",

		"request.docs":  "ドキュメント作業",
		"request.tests": "テスト作業",
		"request.files": "ファイル作業",

		"fallback.body": "ファイル更新",

		"title.create":       "%sを作成",
		"title.improve":      "%sを改善",
		"title.fix":          "%sの問題を修正",
		"title.update":       "%sを更新",
		"title.file.created": "%sを作成",
		"title.file.updated": "%sを更新",
		"title.batch":        "%[2]s%[1]d件を%[3]s",
		"title.batch.mixed":  "%[1]d件のファイルを%[3]s",
		"title.lastresort":   "%d件のファイルを更新",

		"batch.verb.created": "作成",
		"batch.verb.updated": "更新",
		"batch.verb.deleted": "削除",

		"category.docs":  "ドキュメント",
		"category.tests": "テストファイル",
		"category.code":  "コード",

		"rollup.ops":   "操作数: %d",
		"rollup.files": "対象ファイル数: %d",

		"label.tests":  "テスト",
		"label.readme": "README",
		"label.docs":   "ドキュメント",
		"label.html":   "HTMLファイル",
		"label.styles": "スタイル",
		"label.script": "スクリプト",
		"label.python": "Pythonコード",
		"label.gocode": "Goコード",
		"label.config": "設定",
		"label.fixes":  "修正",

		"op.html":       "HTMLファイル",
		"op.python":     "Pythonスクリプト",
		"op.config":     "設定・データファイル",
		"op.file":       "ファイル作成",
		"op.large":      "大規模な変更",
		"op.partial":    "部分的な変更",
		"op.git.commit": "gitコミット",
		"op.git.push":   "gitプッシュ",
		"op.git.status": "git状態確認",
		"op.git":        "git操作",
		"op.pkg":        "パッケージ管理",
		"op.sys":        "システムコマンド",

		"detail.type":    "種別: %s",
		"detail.lines":   "%d行追加",
		"detail.removed": "%d行削除",
		"detail.edits":   "%d箇所の編集",
		"detail.total":   "%d行の変更",
		"detail.size":    "%d文字",

		"feature.form":    "フォーム要素",
		"feature.table":   "テーブルレイアウト",
		"feature.nav":     "ナビゲーション",
		"feature.style":   "インラインスタイル",
		"feature.script":  "スクリプト埋め込み",
		"feature.media":   "レスポンシブ対応",
		"feature.imports": "インポート%d件",
		"feature.classes": "クラス%d件",
		"feature.funcs":   "関数%d件",
		"feature.jsfunc":  "関数定義",
		"feature.events":  "イベント処理",
		"feature.api":     "API呼び出し",
		"feature.hooks":   "Reactフック",

		"change.addition":    "大幅な追加",
		"change.deletion":    "大幅な削除",
		"change.bugfix":      "バグ修正",
		"change.improvement": "改善",
		"change.general":     "一般的な更新",

		"hint.permission": "リポジトリの権限を確認してください（.gitディレクトリへのアクセス権など）。",
		"hint.identity":   "git config user.name / user.email を設定してください。",
		"hint.rejected":   "プッシュが拒否されました。先にリモートの変更を取り込んでください。",
		"hint.upstream":   "リモートブランチが存在しません。--set-upstream付きでプッシュしてください。",
		"hint.network":    "ネットワークを確認し、リモートURLが正しいか確認してください。",
		"hint.unknown":    "上記のgit出力を確認してください。",
	},
}

// actions maps tool names to localized short action verbs.
var actions = map[Lang]map[string]string{
	English: {
		"Write":         "create",
		"Edit":          "edit",
		"Delete":        "delete",
		"MultiEdit":     "edit",
		"NotebookEdit":  "edit",
		"NotebookWrite": "create",
		"Read":          "read",
		"Bash":          "run",
		"WebFetch":      "fetch",
		"WebSearch":     "search",
		"TodoWrite":     "plan",
		"Glob":          "search",
		"Grep":          "search",
		"LS":            "list",
	},
	Japanese: {
		"Write":         "作成",
		"Edit":          "編集",
		"Delete":        "削除",
		"MultiEdit":     "編集",
		"NotebookEdit":  "編集",
		"NotebookWrite": "作成",
		"Read":          "読込",
		"Bash":          "実行",
		"WebFetch":      "取得",
		"WebSearch":     "検索",
		"TodoWrite":     "計画",
		"Glob":          "検索",
		"Grep":          "検索",
		"LS":            "一覧",
	},
}

// templates holds the built-in message templates per language and change type.
// Each template carries literal {summary} and {details} placeholders.
var templates = map[Lang]map[string]string{
	English: {
		"feat":     "feat: {summary}\n\n{details}",
		"fix":      "fix: {summary}\n\n{details}",
		"docs":     "docs: {summary}\n\n{details}",
		"refactor": "refactor: {summary}\n\n{details}",
	},
	Japanese: {
		"feat":     "機能追加: {summary}\n\n{details}",
		"fix":      "修正: {summary}\n\n{details}",
		"docs":     "ドキュメント: {summary}\n\n{details}",
		"refactor": "リファクタリング: {summary}\n\n{details}",
	},
}

// T returns the text for a concept key in the given language.
// Missing keys fall back to English, then to the key itself.
func T(lang Lang, key string) string {
	if m, ok := texts[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := texts[English][key]; ok {
		return s
	}
	return key
}

// ActionVerb returns the localized short verb for a tool name.
func ActionVerb(lang Lang, tool string) string {
	if m, ok := actions[lang]; ok {
		if s, ok := m[tool]; ok {
			return s
		}
	}
	if s, ok := actions[English][tool]; ok {
		return s
	}
	return tool
}

// Template returns the built-in message template for a change type.
func Template(lang Lang, changeType string) string {
	if m, ok := templates[lang]; ok {
		if s, ok := m[changeType]; ok {
			return s
		}
	}
	if s, ok := templates[English][changeType]; ok {
		return s
	}
	return "{summary}\n\n{details}"
}

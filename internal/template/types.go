// Package template provides the template registry, cache-aware loader, and
// project materializer for forge.
package template

import (
	"fmt"
	"sort"
)

// Language identifies a template by its language tag. The set of valid
// values is closed; adding a language means adding a constant and one
// registry entry.
type Language string

const (
	// LanguageRust selects the Rust starter template.
	LanguageRust Language = "rust"

	// LanguageGo selects the Go starter template.
	LanguageGo Language = "go"
)

// ParseLanguage converts a user-supplied string into a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageRust:
		return LanguageRust, nil
	case LanguageGo:
		return LanguageGo, nil
	default:
		return "", fmt.Errorf("unknown language %q; valid languages: %s", s, languageList())
	}
}

// Languages returns all registered language tags, sorted.
func Languages() []string {
	names := []string{string(LanguageRust), string(LanguageGo)}
	sort.Strings(names)
	return names
}

func languageList() string {
	return "go, rust"
}

// Template describes a language's starter project: where it lives and which
// of its files get rewritten during materialization. Immutable once loaded
// from the registry.
type Template struct {
	// Name is the canonical template name; it is also the cache entry's
	// on-disk directory name.
	Name string

	// Language is the identifier this template is registered under.
	Language Language

	// Repository is the source repository URL to clone from.
	Repository string

	// Description is a human-readable summary.
	Description string

	// FilesToCustomize lists the files rewritten by the placeholder engine,
	// in order.
	FilesToCustomize []FileCustomization
}

// FileCustomization describes which file inside a materialized project gets
// rewritten and how.
type FileCustomization struct {
	// Path is relative to the project root.
	Path string

	// Replacements are applied in declared order.
	Replacements []Replacement
}

// Replacement maps a literal placeholder token to a value source.
type Replacement struct {
	// Placeholder is the literal substring to replace.
	Placeholder string

	// Value determines what the placeholder is replaced with.
	Value ValueSource
}

// ValueKind discriminates the closed set of replacement value sources.
type ValueKind int

const (
	// ValueProjectName resolves to the new project's name.
	ValueProjectName ValueKind = iota

	// ValueProjectPath is declared but unimplemented; rules using it are
	// skipped.
	ValueProjectPath

	// ValueAuthorName resolves to the git-configured user.name.
	ValueAuthorName

	// ValueAuthorEmail resolves to the git-configured user.email.
	ValueAuthorEmail

	// ValueCurrentDate resolves to today's date as YYYY-MM-DD.
	ValueCurrentDate

	// ValueCustom resolves to a literal carried by the replacement.
	ValueCustom
)

// ValueSource is a discriminated union of replacement value sources.
// Construct custom literals with CustomValue.
type ValueSource struct {
	Kind    ValueKind
	Literal string
}

// CustomValue returns a ValueSource carrying a literal replacement value.
func CustomValue(literal string) ValueSource {
	return ValueSource{Kind: ValueCustom, Literal: literal}
}

package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	oerrors "github.com/forgelabs/forge/internal/errors"
	"github.com/forgelabs/forge/internal/fsutil"
	"github.com/forgelabs/forge/internal/git"
	"github.com/forgelabs/forge/internal/output"
)

// Global placeholder tokens computed once per materialization.
const (
	TokenProjectName = "{{PROJECT_NAME}}"
	TokenCurrentDate = "{{CURRENT_DATE}}"
	TokenAuthorName  = "{{AUTHOR_NAME}}"
	TokenAuthorEmail = "{{AUTHOR_EMAIL}}"
)

// gitMetadataDir is the version-control metadata directory excluded from
// template copies and stripped before re-initialization.
const gitMetadataDir = ".git"

// initialCommitMessage is the fixed message for the first commit of a
// materialized project.
const initialCommitMessage = "Initial commit from forge"

// CreateOptions configures project materialization.
type CreateOptions struct {
	// Language selects the template.
	Language Language

	// Name is the new project's name and the destination directory's base
	// name.
	Name string

	// Directory is the parent for the destination; empty means the current
	// directory.
	Directory string

	// Overwrite proceeds into an existing destination instead of failing.
	// Pre-existing files not shadowed by template entries survive.
	Overwrite bool
}

// CreateProject materializes a new project: resolve the template, guard the
// destination, copy, customize, and re-initialize version control. Returns
// the destination path. Each step's failure aborts the rest; a partially
// materialized destination is left on disk.
func CreateProject(ctx context.Context, loader *Loader, gitClient git.Client, opts CreateOptions) (string, error) {
	output.Info("creating project", "language", opts.Language, "name", opts.Name)

	templatePath, err := loader.GetOrFetch(ctx, opts.Language)
	if err != nil {
		return "", err
	}

	parent := opts.Directory
	if parent == "" {
		parent = "."
	}
	targetDir := filepath.Join(parent, opts.Name)

	if pathExists(targetDir) {
		if !opts.Overwrite {
			return "", oerrors.NewDirectoryExistsError(targetDir)
		}
		output.Info("directory exists, overwriting", "path", targetDir)
	}

	output.Debug("copying template files", "from", templatePath, "to", targetDir)
	exclude := map[string]struct{}{gitMetadataDir: {}}
	if err := fsutil.CopyTree(templatePath, targetDir, exclude); err != nil {
		return "", err
	}

	t, err := loader.GetTemplate(opts.Language)
	if err != nil {
		return "", err
	}

	output.Debug("customizing project files")
	if err := CustomizeFiles(targetDir, opts.Name, t, gitClient); err != nil {
		return "", err
	}

	output.Debug("initializing git repository")
	if err := reinitRepository(gitClient, targetDir); err != nil {
		return "", err
	}

	return targetDir, nil
}

// BuildSubstitutions computes the global token/value mapping for one
// materialization. Author identity comes from the git config; a missing
// user.name or user.email just omits that token.
func BuildSubstitutions(gitClient git.Client, projectName string) map[string]string {
	subs := map[string]string{
		TokenProjectName: projectName,
		TokenCurrentDate: time.Now().Format("2006-01-02"),
	}

	if name, ok := gitClient.ConfigValue(git.ConfigUserName); ok {
		subs[TokenAuthorName] = name
	}
	if email, ok := gitClient.ConfigValue(git.ConfigUserEmail); ok {
		subs[TokenAuthorEmail] = email
	}

	return subs
}

// ApplyReplacements rewrites content in two passes: first the per-file rules
// in declared order, then every remaining global token. The first pass lets
// a template alias arbitrary literals (like "my-project") to global values;
// the second sweeps up the canonical {{...}} tokens.
func ApplyReplacements(content string, subs map[string]string, rules []Replacement) string {
	result := content

	for _, rule := range rules {
		value, ok := resolveValue(rule.Value, subs)
		if !ok {
			continue
		}
		result = strings.ReplaceAll(result, rule.Placeholder, value)
	}

	for token, value := range subs {
		result = strings.ReplaceAll(result, token, value)
	}

	return result
}

// resolveValue maps a value source to its concrete string. The boolean is
// false when the rule should be skipped: an unresolved author token, or the
// unimplemented ProjectPath variant.
func resolveValue(v ValueSource, subs map[string]string) (string, bool) {
	switch v.Kind {
	case ValueProjectName:
		value, ok := subs[TokenProjectName]
		return value, ok
	case ValueAuthorName:
		value, ok := subs[TokenAuthorName]
		return value, ok
	case ValueAuthorEmail:
		value, ok := subs[TokenAuthorEmail]
		return value, ok
	case ValueCurrentDate:
		value, ok := subs[TokenCurrentDate]
		return value, ok
	case ValueCustom:
		return v.Literal, true
	case ValueProjectPath:
		// Declared but unimplemented; skip.
		return "", false
	default:
		return "", false
	}
}

// CustomizeFiles applies the template's customization rules to the files
// under projectDir. Files the template lists but the clone doesn't contain
// are skipped.
func CustomizeFiles(projectDir, projectName string, t *Template, gitClient git.Client) error {
	subs := BuildSubstitutions(gitClient, projectName)

	for _, customization := range t.FilesToCustomize {
		filePath := filepath.Join(projectDir, customization.Path)

		if !pathExists(filePath) {
			output.Debug("file not found for customization", "path", filePath)
			continue
		}

		output.Debug("customizing file", "path", filePath)

		content, err := os.ReadFile(filePath)
		if err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("reading %s", filePath))
		}

		rewritten := ApplyReplacements(string(content), subs, customization.Replacements)

		if err := os.WriteFile(filePath, []byte(rewritten), 0o644); err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("writing %s", filePath))
		}
	}

	return nil
}

// reinitRepository discards the cloned template's history and starts a fresh
// one with a single commit.
func reinitRepository(gitClient git.Client, projectDir string) error {
	gitDir := filepath.Join(projectDir, gitMetadataDir)
	if pathExists(gitDir) {
		if err := fsutil.RemoveTreeRobust(gitDir); err != nil {
			return err
		}
	}

	if err := gitClient.Init(projectDir); err != nil {
		return err
	}

	return gitClient.Commit(projectDir, initialCommitMessage)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

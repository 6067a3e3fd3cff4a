package template

import (
	"context"
	"path/filepath"

	"github.com/forgelabs/forge/internal/config"
	oerrors "github.com/forgelabs/forge/internal/errors"
	"github.com/forgelabs/forge/internal/fsutil"
	"github.com/forgelabs/forge/internal/git"
	"github.com/forgelabs/forge/internal/output"
)

// Loader resolves languages to cached template paths, cloning into the cache
// on demand. The cache root is fixed at construction; tests inject an
// isolated root through the config.
type Loader struct {
	cacheDir  string
	gitClient git.Client
	templates map[Language]Template
}

// NewLoader creates a loader with the cache root resolved from cfg and the
// registry loaded. The cache directory is created if absent.
func NewLoader(cfg *config.Config, gitClient git.Client) (*Loader, error) {
	cacheDir, err := cfg.CacheDirectory()
	if err != nil {
		return nil, oerrors.WrapIO(err, "resolving cache directory")
	}

	if err := config.EnsureCacheDir(cacheDir); err != nil {
		return nil, oerrors.WrapIO(err, "creating cache directory")
	}

	return &Loader{
		cacheDir:  cacheDir,
		gitClient: gitClient,
		templates: LoadRegistry(),
	}, nil
}

// CacheDir returns the resolved cache root.
func (l *Loader) CacheDir() string {
	return l.cacheDir
}

// GetTemplate looks up the template registered for a language.
func (l *Loader) GetTemplate(language Language) (*Template, error) {
	t, ok := l.templates[language]
	if !ok {
		return nil, oerrors.NewTemplateNotFoundError(string(language), Languages())
	}
	return &t, nil
}

// GetOrFetch returns the cached path for a language's template, cloning it
// into the cache first if absent. A present cache entry is returned as-is;
// staleness is only addressed by an explicit UpdateAll.
func (l *Loader) GetOrFetch(ctx context.Context, language Language) (string, error) {
	t, err := l.GetTemplate(language)
	if err != nil {
		return "", err
	}

	templatePath := filepath.Join(l.cacheDir, t.Name)

	if !pathExists(templatePath) {
		output.Info("template not found in cache, fetching from repository",
			"template", t.Name, "repository", t.Repository)
		if err := l.fetch(ctx, t); err != nil {
			return "", err
		}
	} else {
		output.Debug("using cached template", "path", templatePath)
	}

	return templatePath, nil
}

// fetch replaces the cache entry wholesale: robust removal of any existing
// directory, then a fresh clone. The entry is never patched in place.
func (l *Loader) fetch(ctx context.Context, t *Template) error {
	targetPath := filepath.Join(l.cacheDir, t.Name)

	if pathExists(targetPath) {
		if err := fsutil.RemoveTreeRobust(targetPath); err != nil {
			return err
		}
	}

	if err := l.gitClient.Clone(ctx, t.Repository, targetPath); err != nil {
		return oerrors.NewGitCloneError(t.Repository, err)
	}

	output.Info("fetched template", "template", t.Name)
	return nil
}

// UpdateAll re-fetches every template that currently has a cache entry and
// returns the number updated. Never-cached templates are left untouched;
// zero updates is a success.
func (l *Loader) UpdateAll(ctx context.Context) (int, error) {
	output.Debug("checking for cached templates to update")

	updated := 0
	for _, t := range l.templates {
		templatePath := filepath.Join(l.cacheDir, t.Name)

		if !pathExists(templatePath) {
			continue
		}

		output.Info("updating template", "template", t.Name)
		if err := l.fetch(ctx, &t); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}

// ListTemplates returns all registered templates. Order is not stable
// across runs; callers sort for presentation.
func (l *Loader) ListTemplates() []*Template {
	out := make([]*Template, 0, len(l.templates))
	for lang := range l.templates {
		t := l.templates[lang]
		out = append(out, &t)
	}
	return out
}

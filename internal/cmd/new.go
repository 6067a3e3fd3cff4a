package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/forgelabs/forge/internal/errors"
	"github.com/forgelabs/forge/internal/git"
	"github.com/forgelabs/forge/internal/output"
	"github.com/forgelabs/forge/internal/template"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var directoryFlag string
	var yesFlag bool

	c := &cobra.Command{
		Use:   "new <language> <name>",
		Short: "Create a new project from a template",
		Long: fmt.Sprintf(`Create a new project from a language starter template.

The template is cloned into the local cache on first use and copied from
there on subsequent runs. Placeholder tokens in the template are rewritten
with the project name, the current date, and the git-configured author
identity. The destination gets a fresh git history with a single commit.

Languages: %s

Examples:
  # Create a Rust project in the current directory
  forge new rust my-service

  # Create a Go project under ~/src, overwriting an existing directory
  forge new go my-tool --directory ~/src --yes`, strings.Join(template.Languages(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args, directoryFlag, yesFlag)
		},
	}

	c.Flags().StringVarP(&directoryFlag, "directory", "d", "",
		"Parent directory for the new project (defaults to current directory)")
	c.Flags().BoolVarP(&yesFlag, "yes", "y", false,
		"Overwrite an existing destination directory (stray files are kept)")

	return c
}

func runNew(c *cobra.Command, args []string, directory string, overwrite bool) error {
	language, err := template.ParseLanguage(args[0])
	if err != nil {
		return NewExitError(err, ExitNotFound)
	}
	name := args[1]

	cfg := getConfig()

	gitClient := git.NewClient()
	if !gitClient.IsAvailable() {
		return WrapExit(oerrors.Wrap(oerrors.ErrGitNotAvailable, "checking git capability"))
	}

	loader, err := template.NewLoader(cfg, gitClient)
	if err != nil {
		return WrapExit(err)
	}

	if directory == "" && cfg.Defaults.DefaultDirectory != "" {
		directory = cfg.Defaults.DefaultDirectory
	}

	var dest string
	err = output.RunWithSpinner(c.Context(), func() error {
		var createErr error
		dest, createErr = template.CreateProject(c.Context(), loader, gitClient, template.CreateOptions{
			Language:  language,
			Name:      name,
			Directory: directory,
			Overwrite: overwrite,
		})
		return createErr
	}, output.WithTitle(fmt.Sprintf("Creating %s project %s...", language, name)))
	if err != nil {
		return WrapExit(err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Project %s created", output.StyleNoun.Render(name))))
	output.Println("  Location: " + dest)
	output.Println(output.StyleDim.Render(fmt.Sprintf("  Get started: cd %s", name)))

	return nil
}

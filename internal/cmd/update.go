package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/forgelabs/forge/internal/errors"
	"github.com/forgelabs/forge/internal/git"
	"github.com/forgelabs/forge/internal/output"
	"github.com/forgelabs/forge/internal/template"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update cached templates",
		Long: `Re-fetch every template that is present in the local cache.

Each cached entry is removed and cloned fresh from its source repository.
Templates that were never cached are left alone.`,
		RunE: runUpdate,
	}
}

func runUpdate(c *cobra.Command, _ []string) error {
	gitClient := git.NewClient()
	if !gitClient.IsAvailable() {
		return WrapExit(oerrors.Wrap(oerrors.ErrGitNotAvailable, "checking git capability"))
	}

	loader, err := template.NewLoader(getConfig(), gitClient)
	if err != nil {
		return WrapExit(err)
	}

	var updated int
	err = output.RunWithSpinner(c.Context(), func() error {
		var updateErr error
		updated, updateErr = loader.UpdateAll(c.Context())
		return updateErr
	}, output.WithTitle("Updating cached templates..."))
	if err != nil {
		return WrapExit(err)
	}

	if updated == 0 {
		output.Println("No cached templates found. Use 'forge new' to create a project first.")
		return nil
	}

	output.Println(output.FormatCheckmark(output.StyleSummary.Render(fmt.Sprintf("Updated %d cached template(s)", updated))))
	return nil
}

package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/forgelabs/forge/internal/git"
	"github.com/forgelabs/forge/internal/output"
	"github.com/forgelabs/forge/internal/template"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE:  runList,
	}
}

func runList(_ *cobra.Command, _ []string) error {
	loader, err := template.NewLoader(getConfig(), git.NewClient())
	if err != nil {
		return WrapExit(err)
	}

	templates := loader.ListTemplates()

	// The registry is an unordered map; sort by name for stable output.
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	t := output.NewTable("NAME", "LANGUAGE", "DESCRIPTION", "REPOSITORY")
	for _, tmpl := range templates {
		t.Row(tmpl.Name, string(tmpl.Language), tmpl.Description, tmpl.Repository)
	}

	output.Println(t.String())
	return nil
}

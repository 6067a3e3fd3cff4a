package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelabs/forge/internal/output"
	"github.com/forgelabs/forge/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	info := version.Get()

	output.Println(fmt.Sprintf("forge version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:  %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:   %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:      %s", info.GoVersion))

	return nil
}

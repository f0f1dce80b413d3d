package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artsoul-app/artsoul/internal/interfaces/cli/catalog"
	"github.com/artsoul-app/artsoul/internal/interfaces/cli/migrate"
	"github.com/artsoul-app/artsoul/internal/interfaces/cli/server"
	"github.com/artsoul-app/artsoul/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "artsoul",
		Short:        "ArtSoul - art discovery and personality API",
		Long:         `ArtSoul serves accounts, the artwork catalog, collections and personality profiles over HTTP.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		catalog.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

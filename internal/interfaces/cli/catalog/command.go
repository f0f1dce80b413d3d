package catalog

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	catalogUsecases "github.com/artsoul-app/artsoul/internal/application/catalog/usecases"
	"github.com/artsoul-app/artsoul/internal/infrastructure/database"
	"github.com/artsoul-app/artsoul/internal/infrastructure/metrics"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/seeds"
	"github.com/artsoul-app/artsoul/internal/infrastructure/repository"
	"github.com/artsoul-app/artsoul/internal/interfaces/cli/bootstrap"
	"github.com/artsoul-app/artsoul/internal/shared/services/markdown"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newSeedCommand())

	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load genres and artworks from a YAML fixture",
		Long:  `Load genres and artworks from a YAML fixture. Entries that already exist are left alone, so the command can be re-run.`,
		RunE:  runSeed,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "configs/catalog.seed.yaml", "Path to the fixture file")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	fixture, err := seeds.LoadCatalogFixture(file)
	if err != nil {
		return err
	}

	_, log, err := bootstrap.Env(env)
	if err != nil {
		return err
	}
	defer database.Close()

	gdb := database.Get()
	collector := metrics.NewCollector(prometheus.NewRegistry())
	upsert := catalogUsecases.NewUpsertArtworkUseCase(repository.NewArtworkRepository(gdb, log), markdown.NewService(), collector, log)
	seed := catalogUsecases.NewSeedCatalogUseCase(repository.NewGenreRepository(gdb, log), upsert, log)

	genres := make([]catalogUsecases.GenreSeed, 0, len(fixture.Genres))
	for _, g := range fixture.Genres {
		genres = append(genres, catalogUsecases.GenreSeed{Name: g.Name, Description: g.Description})
	}

	result, err := seed.Execute(context.Background(), catalogUsecases.SeedCatalogCommand{
		Genres:   genres,
		Artworks: fixture.Drafts(),
	})
	if err != nil {
		return fmt.Errorf("catalog seed failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "genres created: %d, artworks created: %d, artworks skipped: %d\n",
		result.GenresCreated, result.ArtworksCreated, result.ArtworksSkipped)
	return nil
}

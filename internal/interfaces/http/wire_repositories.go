package http

import (
	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/infrastructure/repository"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	accountRepo     *repository.AccountRepository
	collectionRepo  *repository.CollectionRepository
	artworkRepo     *repository.ArtworkRepository
	genreRepo       *repository.GenreRepository
	personalityRepo *repository.PersonalityProfileRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		accountRepo:     repository.NewAccountRepository(db, log),
		collectionRepo:  repository.NewCollectionRepository(db, log),
		artworkRepo:     repository.NewArtworkRepository(db, log),
		genreRepo:       repository.NewGenreRepository(db, log),
		personalityRepo: repository.NewPersonalityProfileRepository(db, log),
	}
}

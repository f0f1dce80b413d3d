package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/shared/errors"
)

func validDraft() Draft {
	return Draft{
		GlobalID:   "movie-550",
		OriginalID: "550",
		Source:     "TMDB",
		Title:      "Fight Club",
		Category:   "cine",
		ImageURL:   "https://image.tmdb.org/t/p/w500/fc.jpg",
		Creator:    "David Fincher",
	}
}

func TestDraftValidateEnumeratesAllMissingFields(t *testing.T) {
	err := Draft{Title: "Only a title"}.Validate()

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, []string{"id", "originalId", "source", "category", "imageUrl", "creator"}, appErr.Fields)
}

func TestDraftValidateRejectsUnknownEnumsAndRating(t *testing.T) {
	d := validDraft()
	d.Source = "Netflix"
	d.Category = "podcast"
	rating := 11.0
	d.Rating = &rating

	appErr := errors.GetAppError(d.Validate())
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"source", "category", "rating"}, appErr.Fields)
}

func TestNewArtwork(t *testing.T) {
	a, err := NewArtwork(validDraft())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.SID(), "art_"))
	assert.Equal(t, "movie-550", a.GlobalID())
	assert.Equal(t, CategoryFilm, a.Category())
	assert.NotNil(t, a.Metadata())
}

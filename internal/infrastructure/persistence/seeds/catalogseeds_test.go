package seeds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `
genres:
  - name: Jazz
    description: Improvised and syncopated
artworks:
  - id: spotify-4uLU6hMCjMI75M1A2tKUQC
    originalId: 4uLU6hMCjMI75M1A2tKUQC
    source: Spotify
    title: Kind of Blue
    category: música
    imageUrl: https://i.scdn.co/image/kob.jpg
    creator: Miles Davis
    year: "1959"
    rating: 9.5
    metadata:
      genres: [jazz, modal]
      label: Columbia
`

func TestDecodeCatalogFixture(t *testing.T) {
	fixture, err := DecodeCatalogFixture(strings.NewReader(sampleFixture))
	require.NoError(t, err)

	require.Len(t, fixture.Genres, 1)
	assert.Equal(t, "Jazz", fixture.Genres[0].Name)

	drafts := fixture.Drafts()
	require.Len(t, drafts, 1)
	d := drafts[0]
	assert.Equal(t, "spotify-4uLU6hMCjMI75M1A2tKUQC", d.GlobalID)
	assert.Equal(t, "1959", d.Year)
	require.NotNil(t, d.Rating)
	assert.InDelta(t, 9.5, *d.Rating, 0.0001)
	assert.Equal(t, "Columbia", d.Metadata["label"])
	assert.NoError(t, d.Validate())
}

func TestDecodeCatalogFixtureRejectsUnknownFields(t *testing.T) {
	_, err := DecodeCatalogFixture(strings.NewReader("artworks:\n  - titel: typo\n"))
	assert.Error(t, err)
}

func TestDecodeCatalogFixtureEmpty(t *testing.T) {
	fixture, err := DecodeCatalogFixture(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fixture.Artworks)
}

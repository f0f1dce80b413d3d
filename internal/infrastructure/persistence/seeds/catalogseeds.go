// Package seeds loads catalog fixtures used to bootstrap an empty database.
package seeds

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
)

type GenreFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type ArtworkFixture struct {
	ID          string         `yaml:"id"`
	OriginalID  string         `yaml:"originalId"`
	Source      string         `yaml:"source"`
	Title       string         `yaml:"title"`
	Category    string         `yaml:"category"`
	ImageURL    string         `yaml:"imageUrl"`
	Creator     string         `yaml:"creator"`
	Year        string         `yaml:"year"`
	Description string         `yaml:"description"`
	Rating      *float64       `yaml:"rating"`
	Metadata    map[string]any `yaml:"metadata"`
}

func (f ArtworkFixture) Draft() catalog.Draft {
	return catalog.Draft{
		GlobalID:    f.ID,
		OriginalID:  f.OriginalID,
		Source:      f.Source,
		Title:       f.Title,
		Category:    f.Category,
		ImageURL:    f.ImageURL,
		Creator:     f.Creator,
		Year:        f.Year,
		Description: f.Description,
		Rating:      f.Rating,
		Metadata:    f.Metadata,
	}
}

// CatalogFixture is the document layout of a seed file
type CatalogFixture struct {
	Genres   []GenreFixture   `yaml:"genres"`
	Artworks []ArtworkFixture `yaml:"artworks"`
}

func (c *CatalogFixture) Drafts() []catalog.Draft {
	drafts := make([]catalog.Draft, 0, len(c.Artworks))
	for _, a := range c.Artworks {
		drafts = append(drafts, a.Draft())
	}
	return drafts
}

func DecodeCatalogFixture(r io.Reader) (*CatalogFixture, error) {
	var fixture CatalogFixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil {
		if err == io.EOF {
			return &fixture, nil
		}
		return nil, fmt.Errorf("failed to decode catalog fixture: %w", err)
	}
	return &fixture, nil
}

func LoadCatalogFixture(path string) (*CatalogFixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog fixture: %w", err)
	}
	defer f.Close()
	return DecodeCatalogFixture(f)
}

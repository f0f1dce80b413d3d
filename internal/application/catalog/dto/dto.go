package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
)

// FlexString accepts a JSON string or number. Catalog APIs disagree on
// whether ids and years are numeric.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number")
	}
	*f = FlexString(n.String())
	return nil
}

// ArtworkPayload is an externally sourced artwork as the client submits it.
// Required fields are checked by the domain so that every missing one is reported.
type ArtworkPayload struct {
	ID          string         `json:"id"`
	OriginalID  FlexString     `json:"originalId"`
	Source      string         `json:"source"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	ImageURL    string         `json:"imageUrl"`
	Creator     string         `json:"creator"`
	Year        FlexString     `json:"year"`
	Description string         `json:"description"`
	Rating      *float64       `json:"rating"`
	Metadata    map[string]any `json:"metadata"`
}

func (p ArtworkPayload) ToDraft() catalog.Draft {
	return catalog.Draft{
		GlobalID:    p.ID,
		OriginalID:  string(p.OriginalID),
		Source:      p.Source,
		Title:       p.Title,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Creator:     p.Creator,
		Year:        string(p.Year),
		Description: p.Description,
		Rating:      p.Rating,
		Metadata:    p.Metadata,
	}
}

type SearchGamesRequest struct {
	Search string `json:"search" binding:"required"`
}

// ArtworkResponse is the client view of an artwork. ID is the global unique
// id; Ref is the internal reference used in collection routes.
type ArtworkResponse struct {
	ID          string           `json:"id"`
	Ref         string           `json:"ref"`
	OriginalID  string           `json:"originalId"`
	Source      catalog.Source   `json:"source"`
	Title       string           `json:"title"`
	Category    catalog.Category `json:"category"`
	ImageURL    string           `json:"imageUrl"`
	Creator     string           `json:"creator"`
	Year        string           `json:"year,omitempty"`
	Description string           `json:"description,omitempty"`
	Rating      *float64         `json:"rating,omitempty"`
	Metadata    catalog.Metadata `json:"metadata"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func ToArtworkResponse(a *catalog.Artwork) *ArtworkResponse {
	md := a.Metadata()
	if md == nil {
		md = catalog.Metadata{}
	}
	return &ArtworkResponse{
		ID:          a.GlobalID(),
		Ref:         a.SID(),
		OriginalID:  a.OriginalID(),
		Source:      a.Source(),
		Title:       a.Title(),
		Category:    a.Category(),
		ImageURL:    a.ImageURL(),
		Creator:     a.Creator(),
		Year:        a.Year(),
		Description: a.Description(),
		Rating:      a.Rating(),
		Metadata:    md,
		CreatedAt:   a.CreatedAt(),
	}
}

func ToArtworkResponses(artworks []*catalog.Artwork) []*ArtworkResponse {
	out := make([]*ArtworkResponse, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, ToArtworkResponse(a))
	}
	return out
}

package dto

import (
	catalogdto "github.com/artsoul-app/artsoul/internal/application/catalog/dto"
)

// AddToCollectionRequest carries the artwork as the client received it from
// the external catalog.
type AddToCollectionRequest struct {
	Entity *catalogdto.ArtworkPayload `json:"entity" binding:"required"`
}

type AddToCollectionResponse struct {
	Message string                      `json:"message"`
	Artwork *catalogdto.ArtworkResponse `json:"artwork"`
}

const (
	MessageAdded          = "added"
	MessageAlreadyPresent = "already present"
)

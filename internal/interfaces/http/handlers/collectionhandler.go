package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdto "github.com/artsoul-app/artsoul/internal/application/catalog/dto"
	"github.com/artsoul-app/artsoul/internal/application/collection/dto"
	"github.com/artsoul-app/artsoul/internal/application/collection/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

// CollectionHandler serves one artwork list of the signed-in account.
// The routes for favorites and pending share it with a different kind.
type CollectionHandler struct {
	list          account.ListKind
	addUseCase    addToCollectionUseCase
	removeUseCase removeFromCollectionUseCase
	listUseCase   listCollectionUseCase
	logger        logger.Interface
}

func NewCollectionHandler(
	list account.ListKind,
	addUC addToCollectionUseCase,
	removeUC removeFromCollectionUseCase,
	listUC listCollectionUseCase,
	logger logger.Interface,
) *CollectionHandler {
	return &CollectionHandler{
		list:          list,
		addUseCase:    addUC,
		removeUseCase: removeUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

func (h *CollectionHandler) List(c *gin.Context) {
	artworks, err := h.listUseCase.Execute(c.Request.Context(), middleware.AccountRef(c), h.list)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, catalogdto.ToArtworkResponses(artworks))
}

// Add answers 201 when the artwork joined the list and 200 when it was already there.
func (h *CollectionHandler) Add(c *gin.Context) {
	var req dto.AddToCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), usecases.AddToCollectionCommand{
		AccountRef: middleware.AccountRef(c),
		List:       h.list,
		Artwork:    req.Entity.ToDraft(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status, message := http.StatusCreated, dto.MessageAdded
	if !result.Added {
		status, message = http.StatusOK, dto.MessageAlreadyPresent
	}
	c.JSON(status, dto.AddToCollectionResponse{
		Message: message,
		Artwork: catalogdto.ToArtworkResponse(result.Artwork),
	})
}

func (h *CollectionHandler) Remove(c *gin.Context) {
	if err := h.removeUseCase.Execute(c.Request.Context(), usecases.RemoveFromCollectionCommand{
		AccountRef: middleware.AccountRef(c),
		List:       h.list,
		ArtworkRef: c.Param("entityRef"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "removed")
}

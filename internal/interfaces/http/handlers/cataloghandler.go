package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/application/catalog/dto"
	"github.com/artsoul-app/artsoul/internal/application/catalog/usecases"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

type CatalogHandler struct {
	listUseCase        listArtworksUseCase
	getUseCase         getArtworkUseCase
	searchGamesUseCase searchGamesUseCase
	musicTokenUseCase  musicTokenUseCase
	logger             logger.Interface
}

func NewCatalogHandler(
	listUC listArtworksUseCase,
	getUC getArtworkUseCase,
	searchGamesUC searchGamesUseCase,
	musicTokenUC musicTokenUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listUseCase:        listUC,
		getUseCase:         getUC,
		searchGamesUseCase: searchGamesUC,
		musicTokenUseCase:  musicTokenUC,
		logger:             logger,
	}
}

// List returns artworks newest first, optionally narrowed by category and source.
func (h *CatalogHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListArtworksQuery{
		Page:     p.Page,
		Limit:    p.Limit,
		Category: c.Query("category"),
		Source:   c.Query("source"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.PageResponse(c, dto.ToArtworkResponses(result.Artworks), result.Total,
		utils.Pagination{Page: result.Page, Limit: result.Limit})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	a, err := h.getUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, dto.ToArtworkResponse(a))
}

// SearchGames proxies the upstream game search and returns its JSON untouched.
func (h *CatalogHandler) SearchGames(c *gin.Context) {
	var req dto.SearchGamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	raw, err := h.searchGamesUseCase.Execute(c.Request.Context(), req.Search)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

func (h *CatalogHandler) MusicToken(c *gin.Context) {
	token, err := h.musicTokenUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

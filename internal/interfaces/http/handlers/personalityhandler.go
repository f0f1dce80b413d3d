package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/application/personality/dto"
	"github.com/artsoul-app/artsoul/internal/application/personality/usecases"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
	"github.com/artsoul-app/artsoul/internal/shared/id"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

type PersonalityHandler struct {
	saveUseCase     saveProfileUseCase
	getUseCase      getProfileUseCase
	listUserUseCase listUserProfilesUseCase
	deleteUseCase   deleteProfileUseCase
	logger          logger.Interface
}

func NewPersonalityHandler(
	saveUC saveProfileUseCase,
	getUC getProfileUseCase,
	listUserUC listUserProfilesUseCase,
	deleteUC deleteProfileUseCase,
	logger logger.Interface,
) *PersonalityHandler {
	return &PersonalityHandler{
		saveUseCase:     saveUC,
		getUseCase:      getUC,
		listUserUseCase: listUserUC,
		deleteUseCase:   deleteUC,
		logger:          logger,
	}
}

// Save answers 201 for a new profile and 200 when an existing one was rescored.
func (h *PersonalityHandler) Save(c *gin.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.saveUseCase.Execute(c.Request.Context(), usecases.SaveProfileCommand{
		CallerRef:  middleware.AccountRef(c),
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Scores:     req.Scores,
		TotalScore: req.TotalScore,
		TestType:   req.TestType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	utils.DataResponse(c, status, dto.ToProfileResponse(result.Profile))
}

func (h *PersonalityHandler) Get(c *gin.Context) {
	p, err := h.getUseCase.Execute(c.Request.Context(), c.Param("entityType"), c.Param("entityId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, dto.ToProfileResponse(p))
}

func (h *PersonalityHandler) ListForAccount(c *gin.Context) {
	accountRef, err := utils.ParseRefParam(c, "accountRef", id.PrefixAccount, "account")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profiles, err := h.listUserUseCase.Execute(c.Request.Context(), accountRef)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, dto.ToProfileResponses(profiles))
}

func (h *PersonalityHandler) Delete(c *gin.Context) {
	err := h.deleteUseCase.Execute(c.Request.Context(), middleware.AccountRef(c), c.Param("entityType"), c.Param("entityId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "profile deleted")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/application/account/dto"
	"github.com/artsoul-app/artsoul/internal/application/account/usecases"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/middleware"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

type AccountHandler struct {
	registerUseCase      registerUseCase
	loginUseCase         loginUseCase
	getUseCase           getAccountUseCase
	updateUseCase        updateAccountUseCase
	deleteUseCase        deleteAccountUseCase
	requestResetUseCase  requestPasswordResetUseCase
	resetPasswordUseCase resetPasswordUseCase
	logger               logger.Interface
}

func NewAccountHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	getUC getAccountUseCase,
	updateUC updateAccountUseCase,
	deleteUC deleteAccountUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		registerUseCase:      registerUC,
		loginUseCase:         loginUC,
		getUseCase:           getUC,
		updateUseCase:        updateUC,
		deleteUseCase:        deleteUC,
		requestResetUseCase:  requestResetUC,
		resetPasswordUseCase: resetPasswordUC,
		logger:               logger,
	}
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	// binding already checked the format
	birthdate, _ := utils.ParseISODate(req.Birthdate)
	birthdate = birthdate.UTC()

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Birthdate:   &birthdate,
		Preferences: req.Preferences.ToDomain(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Credential: result.Credential,
		Account:    dto.ToAccountResponse(result.Account),
	})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Credential: result.Credential,
		Account:    dto.ToAccountResponse(result.Account),
	})
}

func (h *AccountHandler) GetMe(c *gin.Context) {
	a, err := h.getUseCase.Execute(c.Request.Context(), middleware.AccountRef(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, dto.ToAccountResponse(a))
}

func (h *AccountHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.UpdateAccountCommand{
		AccountRef: middleware.AccountRef(c),
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
	}
	if req.Birthdate != nil {
		birthdate, _ := utils.ParseISODate(*req.Birthdate)
		birthdate = birthdate.UTC()
		cmd.Birthdate = &birthdate
	}
	if req.Preferences != nil {
		prefs := req.Preferences.ToDomain()
		cmd.Preferences = &prefs
	}

	a, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, dto.ToAccountResponse(a), "account updated")
}

func (h *AccountHandler) DeleteMe(c *gin.Context) {
	if err := h.deleteUseCase.Execute(c.Request.Context(), middleware.AccountRef(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "account deleted")
}

// RequestPasswordReset answers 202 whether or not the email is known.
func (h *AccountHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{
		Email: req.Email,
	}); err != nil {
		h.logger.Errorw("password reset request failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusAccepted, "if the email is registered, a reset link has been sent")
}

func (h *AccountHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.resetPasswordUseCase.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:    req.Token,
		Password: req.Password,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "password has been reset")
}

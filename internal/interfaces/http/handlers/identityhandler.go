package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	accountdto "github.com/artsoul-app/artsoul/internal/application/account/dto"
	"github.com/artsoul-app/artsoul/internal/application/identity/dto"
	"github.com/artsoul-app/artsoul/internal/application/identity/usecases"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

type IdentityHandler struct {
	startUseCase    startOAuthUseCase
	callbackUseCase handleCallbackUseCase
	exchangeUseCase exchangeSessionCodeUseCase
	deepLinks       *usecases.ReturnAddressPolicy
	logger          logger.Interface
}

func NewIdentityHandler(
	startUC startOAuthUseCase,
	callbackUC handleCallbackUseCase,
	exchangeUC exchangeSessionCodeUseCase,
	deepLinks *usecases.ReturnAddressPolicy,
	logger logger.Interface,
) *IdentityHandler {
	return &IdentityHandler{
		startUseCase:    startUC,
		callbackUseCase: callbackUC,
		exchangeUseCase: exchangeUC,
		deepLinks:       deepLinks,
		logger:          logger,
	}
}

// StartGoogle sends the user agent to the consent screen. The optional
// redirect_uri rides along in the state parameter.
func (h *IdentityHandler) StartGoogle(c *gin.Context) {
	var req dto.StartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	authURL, err := h.startUseCase.Execute(req.RedirectURI)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *IdentityHandler) GoogleCallback(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	providerError := req.Error
	if providerError != "" && req.ErrorDescription != "" {
		providerError = req.Error + ": " + req.ErrorDescription
	}

	delivery, err := h.callbackUseCase.Execute(c.Request.Context(), usecases.CallbackCommand{
		Code:          req.Code,
		State:         req.State,
		ProviderError: providerError,
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr == nil || appErr.Code >= http.StatusInternalServerError {
			h.logger.Warnw("identity callback failed", "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	if delivery.Kind == usecases.DeliverRedirect {
		c.Redirect(http.StatusFound, delivery.Location)
		return
	}

	c.JSON(http.StatusOK, accountdto.SessionResponse{
		Credential: delivery.Credential,
		Account:    accountdto.ToAccountResponse(delivery.Account),
	})
}

// Activation serves the page that opens a custom scheme return address.
// Web addresses never come through here; they are redirected directly.
func (h *IdentityHandler) Activation(c *gin.Context) {
	var req dto.ActivationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	target := strings.TrimSpace(req.DeepLink)
	if usecases.IsWebAddress(target) || !h.deepLinks.Allowed(target) {
		utils.ErrorResponseWithError(c, errors.NewFieldValidationError(
			"deep_link must be an absolute URI with an app scheme", []string{"deep_link"}))
		return
	}

	if err := renderActivationPage(c, target); err != nil {
		h.logger.Errorw("failed to render activation page", "error", err)
		utils.ErrorResponseWithError(c, err)
	}
}

func (h *IdentityHandler) ExchangeSessionCode(c *gin.Context) {
	var req dto.ExchangeSessionCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.exchangeUseCase.Execute(c.Request.Context(), req.Code)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, accountdto.SessionResponse{
		Credential: result.Credential,
		Account:    accountdto.ToAccountResponse(result.Account),
	})
}

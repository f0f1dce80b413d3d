package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	accountdto "github.com/artsoul-app/artsoul/internal/application/account/dto"
	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/infrastructure/cache"
	"github.com/artsoul-app/artsoul/internal/shared/constants"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// Callback outcomes as recorded by the observer
const (
	OutcomeRedirect       = "redirect"
	OutcomeJSON           = "json"
	OutcomeProviderError  = "provider_error"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeNoProviderUser = "no_provider_user"
	OutcomeFailed         = "failed"
)

type DeliveryKind int

const (
	// DeliverJSON answers the callback itself with the credential
	DeliverJSON DeliveryKind = iota
	// DeliverRedirect sends the user agent to Location
	DeliverRedirect
)

type CallbackCommand struct {
	Code          string
	State         string
	ProviderError string
}

// Delivery says how the callback hands the session to the client.
type Delivery struct {
	Kind       DeliveryKind
	Location   string
	Account    *account.Account
	Credential string
}

// HandleCallbackUseCase completes the provider round trip: it exchanges the
// code, reconciles the profile to an account, issues a credential and plans
// its delivery.
type HandleCallbackUseCase struct {
	provider        IdentityProvider
	reconciler      *ReconcileIdentityUseCase
	issuer          CredentialIssuer
	codes           SessionCodeStore
	allowed         *ReturnAddressPolicy
	deliverCodeOnly bool
	observer        CallbackObserver
	logger          logger.Interface
}

type HandleCallbackOptions struct {
	AllowedRedirects []string
	// DeliverSessionCode appends a one-time code instead of the credential to return addresses
	DeliverSessionCode bool
}

func NewHandleCallbackUseCase(
	provider IdentityProvider,
	reconciler *ReconcileIdentityUseCase,
	issuer CredentialIssuer,
	codes SessionCodeStore,
	observer CallbackObserver,
	opts HandleCallbackOptions,
	logger logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		provider:        provider,
		reconciler:      reconciler,
		issuer:          issuer,
		codes:           codes,
		allowed:         NewReturnAddressPolicy(opts.AllowedRedirects),
		deliverCodeOnly: opts.DeliverSessionCode,
		observer:        observer,
		logger:          logger,
	}
}

func (uc *HandleCallbackUseCase) Execute(ctx context.Context, cmd CallbackCommand) (*Delivery, error) {
	if uc.provider == nil {
		return nil, errors.NewServiceUnavailableError("Google sign-in is not configured")
	}

	if cmd.ProviderError != "" {
		uc.record(OutcomeProviderError)
		uc.logger.Warnw("identity provider returned an error", "error_code", cmd.ProviderError)
		return nil, errors.NewBadRequestError(constants.GetOAuthErrorMessage(constants.OAuthErrorCode(cmd.ProviderError)), cmd.ProviderError)
	}

	code := strings.TrimSpace(cmd.Code)
	if code == "" || code == constants.PlaceholderAuthorizationCode {
		uc.record(OutcomeInvalidRequest)
		return nil, errors.NewBadRequestError("Authorization code is missing or invalid")
	}

	returnAddress := DecodeState(cmd.State)
	if returnAddress != "" && !uc.allowed.Allowed(returnAddress) {
		uc.logger.Warnw("ignoring unusable or disallowed return address", "redirect_uri", returnAddress)
		returnAddress = ""
	}

	profile, err := uc.provider.FetchProfile(ctx, code)
	if err != nil {
		uc.record(OutcomeFailed)
		uc.logger.Warnw("failed to fetch provider profile", "error", err)
		return nil, err
	}

	a, err := uc.reconciler.Execute(ctx, profile)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeMissingProfileData) {
			uc.record(OutcomeNoProviderUser)
		} else {
			uc.record(OutcomeFailed)
		}
		return nil, err
	}

	credential, err := uc.issuer.Issue(a)
	if err != nil {
		uc.record(OutcomeFailed)
		uc.logger.Errorw("failed to issue credential", "account_id", a.SID(), "error", err)
		return nil, fmt.Errorf("failed to issue credential: %w", err)
	}

	delivery := &Delivery{Kind: DeliverJSON, Account: a, Credential: credential}
	if returnAddress == "" {
		uc.record(OutcomeJSON)
		return delivery, nil
	}

	params, err := uc.deliveryParams(ctx, a, credential)
	if err != nil {
		uc.record(OutcomeFailed)
		return nil, err
	}

	target := appendQuery(returnAddress, params)
	delivery.Kind = DeliverRedirect
	if IsWebAddress(returnAddress) {
		delivery.Location = target
	} else {
		delivery.Location = constants.ActivationPath + "?" + url.Values{"deep_link": {target}}.Encode()
	}

	uc.record(OutcomeRedirect)
	uc.logger.Infow("identity callback delivered", "account_id", a.SID(), "web", IsWebAddress(returnAddress))
	return delivery, nil
}

func (uc *HandleCallbackUseCase) deliveryParams(ctx context.Context, a *account.Account, credential string) (url.Values, error) {
	if uc.deliverCodeOnly && uc.codes != nil {
		code, err := uc.codes.Put(ctx, cache.SessionGrant{Credential: credential, AccountRef: a.SID()})
		if err != nil {
			uc.logger.Errorw("failed to store session code", "account_id", a.SID(), "error", err)
			return nil, fmt.Errorf("failed to store session code: %w", err)
		}
		return url.Values{"code": {code}}, nil
	}

	user, err := json.Marshal(accountdto.ToAccountSummary(a))
	if err != nil {
		return nil, fmt.Errorf("failed to encode account summary: %w", err)
	}
	return url.Values{"token": {credential}, "user": {string(user)}}, nil
}

func (uc *HandleCallbackUseCase) record(outcome string) {
	if uc.observer != nil {
		uc.observer.RecordOAuthCallback(outcome)
	}
}

// appendQuery adds params to uri, keeping whatever query it already carries.
func appendQuery(uri string, params url.Values) string {
	u, err := url.Parse(uri)
	if err != nil {
		sep := "?"
		if strings.Contains(uri, "?") {
			sep = "&"
		}
		return uri + sep + params.Encode()
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

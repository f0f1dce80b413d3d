package dto

type StartRequest struct {
	RedirectURI string `form:"redirect_uri"`
}

// CallbackRequest carries the query the identity provider sends back
type CallbackRequest struct {
	Code             string `form:"code"`
	State            string `form:"state"`
	Error            string `form:"error"`
	ErrorDescription string `form:"error_description"`
}

type ExchangeSessionCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ActivationRequest struct {
	DeepLink string `form:"deep_link"`
}

package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/application/account/dto"
	"github.com/artsoul-app/artsoul/internal/application/account/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers/testutil"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	cmd    usecases.RegisterCommand
	result *usecases.SessionResult
	err    error
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.SessionResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.SessionResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.SessionResult, error) {
	return m.result, m.err
}

type mockGetAccountUC struct {
	ref    string
	result *account.Account
	err    error
}

func (m *mockGetAccountUC) Execute(ctx context.Context, accountRef string) (*account.Account, error) {
	m.ref = accountRef
	return m.result, m.err
}

type mockUpdateAccountUC struct {
	cmd    usecases.UpdateAccountCommand
	result *account.Account
	err    error
}

func (m *mockUpdateAccountUC) Execute(ctx context.Context, cmd usecases.UpdateAccountCommand) (*account.Account, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteAccountUC struct {
	ref string
	err error
}

func (m *mockDeleteAccountUC) Execute(ctx context.Context, accountRef string) error {
	m.ref = accountRef
	return m.err
}

type mockRequestResetUC struct {
	calls int
	err   error
}

func (m *mockRequestResetUC) Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error {
	m.calls++
	return m.err
}

type mockResetPasswordUC struct {
	err error
}

func (m *mockResetPasswordUC) Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error {
	return m.err
}

type accountMocks struct {
	register *mockRegisterUC
	login    *mockLoginUC
	get      *mockGetAccountUC
	update   *mockUpdateAccountUC
	delete   *mockDeleteAccountUC
	request  *mockRequestResetUC
	reset    *mockResetPasswordUC
}

func newAccountHandler() (*AccountHandler, *accountMocks) {
	m := &accountMocks{
		register: &mockRegisterUC{},
		login:    &mockLoginUC{},
		get:      &mockGetAccountUC{},
		update:   &mockUpdateAccountUC{},
		delete:   &mockDeleteAccountUC{},
		request:  &mockRequestResetUC{},
		reset:    &mockResetPasswordUC{},
	}
	h := NewAccountHandler(m.register, m.login, m.get, m.update, m.delete, m.request, m.reset, logger.NewNopLogger())
	return h, m
}

func testAccount(t *testing.T) *account.Account {
	t.Helper()
	birthdate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	a, err := account.NewAccount("Ada", "ada@example.com", "digest", &birthdate, account.Preferences{FavoriteTypes: []string{"cine"}})
	require.NoError(t, err)
	return a
}

// =====================================================================
// Tests
// =====================================================================

func TestAccountHandler_Register(t *testing.T) {
	h, m := newAccountHandler()
	a := testAccount(t)
	m.register.result = &usecases.SessionResult{Account: a, Credential: "signed"}

	c, w := testutil.NewTestContext(http.MethodPost, "/accounts", map[string]any{
		"name":            "Ada",
		"birthdate":       "1990-05-17T10:00:00Z",
		"email":           "ada@example.com",
		"password":        "correct-horse",
		"confirmPassword": "correct-horse",
		"preferences":     map[string]any{"favorite_types": []string{"cine"}},
	})
	h.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "signed", resp.Credential)
	assert.Equal(t, a.SID(), resp.Account.ID)
	assert.Equal(t, "1990-05-17", resp.Account.Birthdate)
	assert.NotContains(t, w.Body.String(), "digest")

	require.NotNil(t, m.register.cmd.Birthdate)
	assert.Equal(t, time.Date(1990, 5, 17, 10, 0, 0, 0, time.UTC), *m.register.cmd.Birthdate)
	assert.Equal(t, []string{"cine"}, m.register.cmd.Preferences.FavoriteTypes)
}

func TestAccountHandler_RegisterEnumeratesViolations(t *testing.T) {
	h, m := newAccountHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/accounts", map[string]any{
		"name":            "Ada",
		"email":           "not-an-email",
		"password":        "short",
		"confirmPassword": "different",
	})
	h.Register(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body, err := testutil.ParseError(w)
	require.NoError(t, err)
	assert.True(t, body.Error)
	assert.Equal(t, string(errors.ErrorTypeValidation), body.Type)
	assert.ElementsMatch(t, []string{"birthdate", "email", "password", "confirmPassword"}, body.Fields)
	assert.Contains(t, body.Details, "password must be at least 8 characters long")
	assert.Nil(t, m.register.result)
}

func TestAccountHandler_RegisterDuplicateEmail(t *testing.T) {
	h, m := newAccountHandler()
	m.register.err = errors.NewConflictError("Email already registered")

	c, w := testutil.NewTestContext(http.MethodPost, "/accounts", map[string]any{
		"name":            "Ada",
		"birthdate":       "1990-05-17",
		"email":           "ada@example.com",
		"password":        "correct-horse",
		"confirmPassword": "correct-horse",
	})
	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAccountHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "signed in", wantStatus: http.StatusOK},
		{name: "unknown email", err: errors.NewAccountNotFoundError(), wantStatus: http.StatusNotFound},
		{name: "wrong password", err: errors.NewInvalidCredentialsError(), wantStatus: http.StatusUnauthorized},
		{name: "no password", err: errors.NewPasswordNotSetError(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newAccountHandler()
			if tt.err != nil {
				m.login.err = tt.err
			} else {
				m.login.result = &usecases.SessionResult{Account: testAccount(t), Credential: "signed"}
			}

			c, w := testutil.NewTestContext(http.MethodPost, "/sessions", map[string]any{
				"email":    "ada@example.com",
				"password": "correct-horse",
			})
			h.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAccountHandler_GetMeUsesAuthenticatedAccount(t *testing.T) {
	h, m := newAccountHandler()
	a := testAccount(t)
	m.get.result = a

	c, w := testutil.NewTestContext(http.MethodGet, "/accounts/me", nil)
	testutil.SetAuthContext(c, a.SID())
	h.GetMe(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, a.SID(), m.get.ref)
	assert.Contains(t, w.Body.String(), `"has_password":true`)
}

func TestAccountHandler_UpdateMe(t *testing.T) {
	h, m := newAccountHandler()
	a := testAccount(t)
	m.update.result = a

	c, w := testutil.NewTestContext(http.MethodPatch, "/accounts/me", map[string]any{
		"name":      "Ada L.",
		"birthdate": "1991-01-02",
	})
	testutil.SetAuthContext(c, a.SID())
	h.UpdateMe(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, a.SID(), m.update.cmd.AccountRef)
	require.NotNil(t, m.update.cmd.Name)
	assert.Equal(t, "Ada L.", *m.update.cmd.Name)
	require.NotNil(t, m.update.cmd.Birthdate)
	assert.Equal(t, time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC), *m.update.cmd.Birthdate)
	assert.Nil(t, m.update.cmd.Email)
	assert.Nil(t, m.update.cmd.Preferences)
}

func TestAccountHandler_UpdateMeRejectsBadBirthdate(t *testing.T) {
	h, _ := newAccountHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/accounts/me", map[string]any{"birthdate": "17/05/1990"})
	testutil.SetAuthContext(c, "acc_000000000000")
	h.UpdateMe(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountHandler_DeleteMe(t *testing.T) {
	h, m := newAccountHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/accounts/me", nil)
	testutil.SetAuthContext(c, "acc_000000000000")
	h.DeleteMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acc_000000000000", m.delete.ref)
}

func TestAccountHandler_PasswordReset(t *testing.T) {
	h, m := newAccountHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/accounts/password-reset", map[string]any{"email": "nobody@example.com"})
	h.RequestPasswordReset(c)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, m.request.calls)

	m.reset.err = errors.NewValidationError("Invalid or expired reset token")
	c, w = testutil.NewTestContext(http.MethodPost, "/accounts/password-reset/confirm", map[string]any{
		"token":           "reset_abc",
		"password":        "new-password",
		"confirmPassword": "new-password",
	})
	h.ConfirmPasswordReset(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

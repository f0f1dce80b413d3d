package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/infrastructure/auth"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/testdb"
	"github.com/artsoul-app/artsoul/internal/infrastructure/repository"
	"github.com/artsoul-app/artsoul/internal/infrastructure/token"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type sentMail struct {
	to, name, token string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendPasswordResetEmail(to, name, token string) error {
	m.sent = append(m.sent, sentMail{to, name, token})
	return m.err
}

type fixture struct {
	repo   *repository.AccountRepository
	hasher *auth.BcryptPasswordHasher
	jwt    *auth.JWTService
	log    logger.Interface
}

func newFixture(t *testing.T) *fixture {
	log := logger.NewNopLogger()
	return &fixture{
		repo:   repository.NewAccountRepository(testdb.Open(t), log),
		hasher: auth.NewBcryptPasswordHasher(4),
		jwt:    auth.NewJWTService("test-secret", 365),
		log:    log,
	}
}

func (f *fixture) register(t *testing.T, email string) *SessionResult {
	birthdate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	res, err := NewRegisterUseCase(f.repo, f.hasher, f.jwt, f.log).Execute(context.Background(), RegisterCommand{
		Name:        "Ada",
		Email:       email,
		Password:    "correct-horse",
		Birthdate:   &birthdate,
		Preferences: account.Preferences{FavoriteTypes: []string{"cine"}},
	})
	require.NoError(t, err)
	return res
}

func TestRegisterIssuesCredential(t *testing.T) {
	f := newFixture(t)
	res := f.register(t, " Ada@Example.com ")

	assert.Equal(t, "ada@example.com", res.Account.Email())
	claims, err := f.jwt.Verify(res.Credential)
	require.NoError(t, err)
	assert.Equal(t, res.Account.SID(), claims.AccountRef)
	assert.Equal(t, "1990-05-17", claims.Birthdate)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ada@example.com")

	_, err := NewRegisterUseCase(f.repo, f.hasher, f.jwt, f.log).Execute(context.Background(), RegisterCommand{
		Name:     "Other",
		Email:    "ADA@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ada@example.com")
	uc := NewLoginUseCase(f.repo, f.hasher, f.jwt, f.log)

	res, err := uc.Execute(context.Background(), LoginCommand{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Credential)

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.GetAppError(err).Code)

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.GetAppError(err).Code)
}

func TestLoginExternalAccountHasNoPassword(t *testing.T) {
	f := newFixture(t)
	a, err := account.NewExternalAccount("Grace", "grace@example.com")
	require.NoError(t, err)
	require.NoError(t, f.repo.Create(context.Background(), a))

	_, err = NewLoginUseCase(f.repo, f.hasher, f.jwt, f.log).Execute(context.Background(),
		LoginCommand{Email: "grace@example.com", Password: "anything"})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypePasswordNotSet))
	assert.Equal(t, 401, apperrors.GetAppError(err).Code)
}

func TestUpdateAccount(t *testing.T) {
	f := newFixture(t)
	ada := f.register(t, "ada@example.com")
	f.register(t, "taken@example.com")
	uc := NewUpdateAccountUseCase(f.repo, f.hasher, f.log)

	name := "Ada King"
	prefs := account.Preferences{FavoriteGenres: []string{"noir"}}
	updated, err := uc.Execute(context.Background(), UpdateAccountCommand{
		AccountRef:  ada.Account.SID(),
		Name:        &name,
		Preferences: &prefs,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada King", updated.Name())
	assert.Equal(t, []string{"noir"}, updated.Preferences().FavoriteGenres)

	taken := "Taken@example.com"
	_, err = uc.Execute(context.Background(), UpdateAccountCommand{AccountRef: ada.Account.SID(), Email: &taken})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	newPassword := "brand-new-password"
	_, err = uc.Execute(context.Background(), UpdateAccountCommand{AccountRef: ada.Account.SID(), Password: &newPassword})
	require.NoError(t, err)
	_, err = NewLoginUseCase(f.repo, f.hasher, f.jwt, f.log).Execute(context.Background(),
		LoginCommand{Email: "ada@example.com", Password: newPassword})
	assert.NoError(t, err)
}

func TestDeleteAccountHidesIt(t *testing.T) {
	f := newFixture(t)
	ada := f.register(t, "ada@example.com")

	require.NoError(t, NewDeleteAccountUseCase(f.repo, f.log).Execute(context.Background(), ada.Account.SID()))

	_, err := NewGetAccountUseCase(f.repo, f.log).Execute(context.Background(), ada.Account.SID())
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = NewLoginUseCase(f.repo, f.hasher, f.jwt, f.log).Execute(context.Background(),
		LoginCommand{Email: "ada@example.com", Password: "correct-horse"})
	assert.Equal(t, 404, apperrors.GetAppError(err).Code)

	err = NewDeleteAccountUseCase(f.repo, f.log).Execute(context.Background(), ada.Account.SID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestPasswordResetRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ada@example.com")
	mailer := &fakeMailer{}
	tokens := token.NewTokenGenerator()

	request := NewRequestPasswordResetUseCase(f.repo, tokens, mailer, 0, f.log)
	require.NoError(t, request.Execute(context.Background(), RequestPasswordResetCommand{Email: "ada@example.com"}))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].to)

	stored, err := f.repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.State().ResetTokenHash)
	assert.NotEqual(t, mailer.sent[0].token, *stored.State().ResetTokenHash, "only the hash is stored")

	confirm := NewResetPasswordUseCase(f.repo, tokens, f.hasher, f.log)
	require.NoError(t, confirm.Execute(context.Background(), ResetPasswordCommand{
		Token:    mailer.sent[0].token,
		Password: "after-reset-password",
	}))

	_, err = NewLoginUseCase(f.repo, f.hasher, f.jwt, f.log).Execute(context.Background(),
		LoginCommand{Email: "ada@example.com", Password: "after-reset-password"})
	assert.NoError(t, err)

	// the token is single use
	err = confirm.Execute(context.Background(), ResetPasswordCommand{Token: mailer.sent[0].token, Password: "x-password"})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.GetAppError(err).Code)
}

func TestPasswordResetExpiredToken(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ada@example.com")
	mailer := &fakeMailer{}
	tokens := token.NewTokenGenerator()

	require.NoError(t, NewRequestPasswordResetUseCase(f.repo, tokens, mailer, time.Minute, f.log).
		Execute(context.Background(), RequestPasswordResetCommand{Email: "ada@example.com"}))

	confirm := NewResetPasswordUseCase(f.repo, tokens, f.hasher, f.log)
	confirm.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	err := confirm.Execute(context.Background(), ResetPasswordCommand{Token: mailer.sent[0].token, Password: "new-password"})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.GetAppError(err).Code)
}

func TestPasswordResetDoesNotEnumerate(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ada@example.com")
	mailer := &fakeMailer{err: errors.New("relay down")}
	request := NewRequestPasswordResetUseCase(f.repo, token.NewTokenGenerator(), mailer, 0, f.log)

	assert.NoError(t, request.Execute(context.Background(), RequestPasswordResetCommand{Email: "nobody@example.com"}))
	assert.Empty(t, mailer.sent)

	// mail failures are swallowed
	assert.NoError(t, request.Execute(context.Background(), RequestPasswordResetCommand{Email: "ada@example.com"}))
	assert.Len(t, mailer.sent, 1)
}

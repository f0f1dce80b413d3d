package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/application/personality/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/personality"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers/testutil"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type mockSaveProfileUC struct {
	cmd    usecases.SaveProfileCommand
	result *usecases.SaveProfileResult
	err    error
}

func (m *mockSaveProfileUC) Execute(ctx context.Context, cmd usecases.SaveProfileCommand) (*usecases.SaveProfileResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetProfileUC struct {
	result *personality.Profile
	err    error
}

func (m *mockGetProfileUC) Execute(ctx context.Context, entityType, entityID string) (*personality.Profile, error) {
	return m.result, m.err
}

type mockListUserProfilesUC struct {
	accountRef string
	result     []*personality.Profile
	err        error
}

func (m *mockListUserProfilesUC) Execute(ctx context.Context, accountRef string) ([]*personality.Profile, error) {
	m.accountRef = accountRef
	return m.result, m.err
}

type mockDeleteProfileUC struct {
	callerRef string
	err       error
}

func (m *mockDeleteProfileUC) Execute(ctx context.Context, callerRef, entityType, entityID string) error {
	m.callerRef = callerRef
	return m.err
}

type personalityMocks struct {
	save   *mockSaveProfileUC
	get    *mockGetProfileUC
	list   *mockListUserProfilesUC
	delete *mockDeleteProfileUC
}

func newPersonalityHandler() (*PersonalityHandler, *personalityMocks) {
	m := &personalityMocks{
		save:   &mockSaveProfileUC{},
		get:    &mockGetProfileUC{},
		list:   &mockListUserProfilesUC{},
		delete: &mockDeleteProfileUC{},
	}
	return NewPersonalityHandler(m.save, m.get, m.list, m.delete, logger.NewNopLogger()), m
}

func oceanScores() map[string]any {
	return map[string]any{
		"openness":          map[string]any{"total": 4.2},
		"conscientiousness": map[string]any{"total": 3.1},
		"extraversion":      map[string]any{"total": 2.5},
		"agreeableness":     map[string]any{"total": 3.9},
		"neuroticism":       map[string]any{"total": 1.7},
	}
}

func testProfile(t *testing.T) *personality.Profile {
	t.Helper()
	subject, err := personality.ParseSubject("user", testAccountRef)
	require.NoError(t, err)
	scores, err := personality.ParseScores(oceanScores())
	require.NoError(t, err)
	p, err := personality.NewProfile(subject, scores, nil, personality.TestQuick)
	require.NoError(t, err)
	return p
}

func TestPersonalityHandler_Save(t *testing.T) {
	h, m := newPersonalityHandler()
	m.save.result = &usecases.SaveProfileResult{Profile: testProfile(t), Created: true}

	c, w := testutil.NewTestContext(http.MethodPost, "/personality", map[string]any{
		"entityType": "user",
		"entityId":   testAccountRef,
		"scores":     oceanScores(),
		"testType":   "quick",
	})
	testutil.SetAuthContext(c, testAccountRef)
	h.Save(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testAccountRef, m.save.cmd.CallerRef)
	assert.Equal(t, "user", m.save.cmd.EntityType)
	assert.Contains(t, w.Body.String(), `"entityId":"`+testAccountRef+`"`)

	m.save.result.Created = false
	c, w = testutil.NewTestContext(http.MethodPost, "/personality", map[string]any{
		"entityType": "user",
		"entityId":   testAccountRef,
		"scores":     oceanScores(),
	})
	testutil.SetAuthContext(c, testAccountRef)
	h.Save(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPersonalityHandler_SaveForwardsTraitViolations(t *testing.T) {
	h, m := newPersonalityHandler()
	m.save.err = errors.NewFieldValidationError("Invalid scores", []string{"scores.openness.total", "scores.neuroticism"})

	c, w := testutil.NewTestContext(http.MethodPost, "/personality", map[string]any{
		"entityType": "genre",
		"entityId":   "gen_000000000001",
		"scores":     map[string]any{"openness": map[string]any{}},
	})
	testutil.SetAuthContext(c, testAccountRef)
	h.Save(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body, err := testutil.ParseError(w)
	require.NoError(t, err)
	assert.Equal(t, []string{"scores.openness.total", "scores.neuroticism"}, body.Fields)
}

func TestPersonalityHandler_GetAndDelete(t *testing.T) {
	h, m := newPersonalityHandler()
	m.get.err = errors.NewNotFoundError("Personality profile not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/personality/genre/gen_000000000001", nil)
	testutil.SetURLParam(c, "entityType", "genre")
	testutil.SetURLParam(c, "entityId", "gen_000000000001")
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	m.delete.err = errors.NewForbiddenError("Cannot delete another account's profile")
	c, w = testutil.NewTestContext(http.MethodDelete, "/personality/user/acc_0000000000zz", nil)
	testutil.SetAuthContext(c, testAccountRef)
	testutil.SetURLParam(c, "entityType", "user")
	testutil.SetURLParam(c, "entityId", "acc_0000000000zz")
	h.Delete(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, testAccountRef, m.delete.callerRef)
}

func TestPersonalityHandler_ListForAccount(t *testing.T) {
	h, m := newPersonalityHandler()
	m.list.result = []*personality.Profile{testProfile(t)}

	c, w := testutil.NewTestContext(http.MethodGet, "/personality/user/"+testAccountRef, nil)
	testutil.SetURLParam(c, "accountRef", testAccountRef)
	h.ListForAccount(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testAccountRef, m.list.accountRef)

	c, w = testutil.NewTestContext(http.MethodGet, "/personality/user/gen_000000000001", nil)
	testutil.SetURLParam(c, "accountRef", "gen_000000000001")
	h.ListForAccount(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

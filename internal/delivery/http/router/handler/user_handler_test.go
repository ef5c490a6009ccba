package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assetverse/internal/delivery/http/response"
	"assetverse/internal/delivery/http/validator"
	"assetverse/internal/domain/entity"
	"assetverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterUserOutput), args.Error(1)
}

func (m *mockUserUsecase) SearchUsers(ctx context.Context, searchText string) ([]*entity.User, error) {
	args := m.Called(ctx, searchText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserUsecase) GetRoleByEmail(ctx context.Context, email string) (entity.Role, error) {
	args := m.Called(ctx, email)

	return args.Get(0).(entity.Role), args.Error(1)
}

func (m *mockUserUsecase) UpdateUserRole(ctx context.Context, input *usecase.UpdateUserRoleInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func newUserTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_RegisterUser_NewUser(t *testing.T) {
	uc := &mockUserUsecase{}
	uc.Test(t)
	t.Cleanup(func() { uc.AssertExpectations(t) })
	h := NewUserHandler(uc, newTestLogger())

	uc.On("RegisterUser", mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		Return(&usecase.RegisterUserOutput{InsertedID: "u1", Inserted: true}, nil)

	c, rec := newUserTestContext(t, http.MethodPost, "/users",
		`{"email":"new@example.com","displayName":"New User"}`)

	require.NoError(t, h.RegisterUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insertedId":"u1"`)
}

func TestUserHandler_RegisterUser_ExistingUserIsOK(t *testing.T) {
	uc := &mockUserUsecase{}
	uc.Test(t)
	t.Cleanup(func() { uc.AssertExpectations(t) })
	h := NewUserHandler(uc, newTestLogger())

	uc.On("RegisterUser", mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		Return(&usecase.RegisterUserOutput{Message: "user exists", Inserted: false}, nil)

	c, rec := newUserTestContext(t, http.MethodPost, "/users",
		`{"email":"existing@example.com","displayName":"Existing"}`)

	require.NoError(t, h.RegisterUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestUserHandler_RegisterUser_InvalidEmail(t *testing.T) {
	uc := &mockUserUsecase{}
	uc.Test(t)
	h := NewUserHandler(uc, newTestLogger())

	c, _ := newUserTestContext(t, http.MethodPost, "/users",
		`{"email":"not-an-email","displayName":"X"}`)

	err := h.RegisterUser(c)

	require.Error(t, err)
	uc.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
}

func TestUserHandler_GetUserRole(t *testing.T) {
	uc := &mockUserUsecase{}
	uc.Test(t)
	t.Cleanup(func() { uc.AssertExpectations(t) })
	h := NewUserHandler(uc, newTestLogger())

	uc.On("GetRoleByEmail", mock.Anything, "hr@example.com").Return(entity.RoleHR, nil)

	c, rec := newUserTestContext(t, http.MethodGet, "/users/hr@example.com/role", "")
	c.SetParamNames("email")
	c.SetParamValues("hr@example.com")

	require.NoError(t, h.GetUserRole(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"hr"`)
}

package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepo is a map-backed UserRepository for handler tests.
type memoryUserRepo struct {
	byID    map[kernel.UUID]*user.User
	byEmail map[string]*user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    make(map[kernel.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (r *memoryUserRepo) Add(_ context.Context, account *user.User) error {
	if _, exists := r.byEmail[account.Email()]; exists {
		return ports.ErrEmailTaken
	}
	r.byID[account.ID()] = account
	r.byEmail[account.Email()] = account
	return nil
}

func (r *memoryUserRepo) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	account, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("userID", id)
	}
	return account, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	account, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("email", email)
	}
	return account, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newAuthTestServer(t *testing.T, users ports.UserRepository) (*echo.Echo, *httpadapter.TokenService) {
	t.Helper()
	tokens, err := httpadapter.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	server := httpadapter.NewServer(httpadapter.ServerParams{
		RegisterUserHandler: commands.NewRegisterUserCommandHandler(users),
		Users:               users,
		Tokens:              tokens,
		Support: httpadapter.SupportContact{
			WhatsAppNumber: "2348000000000",
			PhoneNumber:    "+2348000000000",
			Email:          "help@example.com",
		},
		Logger: discardLogger(),
	})

	e := echo.New()
	server.RegisterRoutes(e)
	return e, tokens
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_CreatesAccountAndReturnsToken(t *testing.T) {
	users := newMemoryUserRepo()
	e, tokens := newAuthTestServer(t, users)

	rec := postJSON(e, "/api/v1/auth/register",
		`{"name":"Chidi","email":"chidi@example.com","password":"s3cretpw"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp httpadapter.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "chidi@example.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)

	userID, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID.String())
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	users := newMemoryUserRepo()
	e, _ := newAuthTestServer(t, users)

	first := postJSON(e, "/api/v1/auth/register",
		`{"name":"Chidi","email":"chidi@example.com","password":"s3cretpw"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(e, "/api/v1/auth/register",
		`{"name":"Other","email":"chidi@example.com","password":"different"}`)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestRegister_PhoneIsOptional(t *testing.T) {
	users := newMemoryUserRepo()
	e, _ := newAuthTestServer(t, users)

	withoutPhone := postJSON(e, "/api/v1/auth/register",
		`{"name":"Chidi","email":"chidi@example.com","password":"s3cretpw"}`)
	require.Equal(t, http.StatusCreated, withoutPhone.Code)

	account, err := users.GetByEmail(context.Background(), "chidi@example.com")
	require.NoError(t, err)
	assert.Empty(t, account.Phone())

	withPhone := postJSON(e, "/api/v1/auth/register",
		`{"name":"Ngozi","email":"ngozi@example.com","phone":"+2348098765432","password":"s3cretpw"}`)
	require.Equal(t, http.StatusCreated, withPhone.Code)

	account, err = users.GetByEmail(context.Background(), "ngozi@example.com")
	require.NoError(t, err)
	assert.Equal(t, "+2348098765432", account.Phone())
}

func TestRegister_RejectsInvalidPayload(t *testing.T) {
	e, _ := newAuthTestServer(t, newMemoryUserRepo())

	rec := postJSON(e, "/api/v1/auth/register",
		`{"name":"Chidi","email":"not-an-email","password":"s3cretpw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_VerifiesPassword(t *testing.T) {
	users := newMemoryUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpw"), bcrypt.MinCost)
	require.NoError(t, err)
	account, err := user.NewUser(
		kernel.NewUUID(), "Chidi", "chidi@example.com", "", string(hash))
	require.NoError(t, err)
	require.NoError(t, users.Add(context.Background(), account))

	e, _ := newAuthTestServer(t, users)

	ok := postJSON(e, "/api/v1/auth/login",
		`{"email":"chidi@example.com","password":"s3cretpw"}`)
	assert.Equal(t, http.StatusOK, ok.Code)

	wrong := postJSON(e, "/api/v1/auth/login",
		`{"email":"chidi@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)

	unknown := postJSON(e, "/api/v1/auth/login",
		`{"email":"ghost@example.com","password":"s3cretpw"}`)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
}

func TestProtectedRoutes_RequireBearerToken(t *testing.T) {
	e, _ := newAuthTestServer(t, newMemoryUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrderFlow_RouteIsRegistered(t *testing.T) {
	users := newMemoryUserRepo()
	e, tokens := newAuthTestServer(t, users)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpw"), bcrypt.MinCost)
	require.NoError(t, err)
	account, err := user.NewUser(
		kernel.NewUUID(), "Chidi", "chidi@example.com", "", string(hash))
	require.NoError(t, err)
	require.NoError(t, users.Add(context.Background(), account))

	token, err := tokens.Issue(account)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/orders/"+kernel.NewUUID().String()+"/flow", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders/not-a-uuid/flow", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	e, _ := newAuthTestServer(t, newMemoryUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSupportContact(t *testing.T) {
	e, _ := newAuthTestServer(t, newMemoryUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/support/contact", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.SupportContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://wa.me/2348000000000", resp.WhatsAppURL)
	assert.Equal(t, "tel:+2348000000000", resp.PhoneURL)
}

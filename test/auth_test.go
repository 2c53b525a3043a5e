//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestHealth() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.do(ctx, http.MethodGet, "/health", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.Status)

	var body map[string]string
	require.NoError(s.T(), resp.decode(&body))
	assert.Equal(s.T(), "ok", body["status"])

	resp = s.do(ctx, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(s.T(), http.StatusOK, resp.Status, string(resp.Body))
}

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	reg, registered := s.registerUser(ctx)
	assert.Equal(t, reg.Email, registered.User.Email)
	assert.Equal(t, auth.RoleUser, registered.User.Role)

	resp := s.do(ctx, http.MethodPost, "/api/auth/login", "", users.LoginRequest{
		Email:    reg.Email,
		Password: reg.Password,
	})
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))

	var loggedIn users.AuthResponse
	require.NoError(t, resp.decode(&loggedIn))
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	resp = s.do(ctx, http.MethodGet, "/api/auth/me", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	var me users.User
	require.NoError(t, resp.decode(&me))
	assert.Equal(t, reg.Username, me.Username)

	resp = s.do(ctx, http.MethodPost, "/api/auth/login", "", users.LoginRequest{
		Email:    reg.Email,
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
}

func (s *IntegrationTestSuite) TestRegister_DuplicateEmail() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	reg, _ := s.registerUser(ctx)
	before := s.countRows("app_user", "")

	dup := fakeRegistration()
	dup.Email = reg.Email
	resp := s.do(ctx, http.MethodPost, "/api/auth/register", "", dup)
	assert.Equal(t, http.StatusConflict, resp.Status, string(resp.Body))
	assert.Equal(t, before, s.countRows("app_user", ""))
	assert.Equal(t, 1, s.countRows("app_user", "email = $1", reg.Email))
}

func (s *IntegrationTestSuite) TestProtectedRoutes() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	resp := s.do(ctx, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)

	_, user := s.registerUser(ctx)
	resp = s.do(ctx, http.MethodGet, "/api/admin/stats", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.Status)
}

func (s *IntegrationTestSuite) TestAdmin() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	reg, user := s.registerUser(ctx)
	_, err := s.DB.ExecContext(ctx, `UPDATE app_user SET role = 'admin' WHERE id = $1`, user.User.ID)
	require.NoError(t, err)

	// the role travels in the token, so log in again
	resp := s.do(ctx, http.MethodPost, "/api/auth/login", "", users.LoginRequest{Email: reg.Email, Password: reg.Password})
	require.Equal(t, http.StatusOK, resp.Status)
	var admin users.AuthResponse
	require.NoError(t, resp.decode(&admin))

	resp = s.do(ctx, http.MethodGet, "/api/admin/stats", admin.Token, nil)
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))
	var stats map[string]int
	require.NoError(t, resp.decode(&stats))
	assert.GreaterOrEqual(t, stats["users"], 1)
	assert.GreaterOrEqual(t, stats["admins"], 1)

	resp = s.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", user.User.ID), admin.Token, map[string]string{"role": "user"})
	assert.Equal(t, http.StatusBadRequest, resp.Status, "admins cannot demote themselves")
}

//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/users"

	"github.com/brianvoe/gofakeit/v6"
)

type apiResponse struct {
	Status int
	Body   []byte
}

func (r apiResponse) decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) apiResponse {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return apiResponse{Status: resp.StatusCode, Body: respBytes}
}

func fakeRegistration() users.RegisterRequest {
	return users.RegisterRequest{
		Email:    strings.ToLower(gofakeit.Username()+gofakeit.DigitN(6)) + "@example.com",
		Username: gofakeit.Username() + gofakeit.DigitN(6),
		Password: gofakeit.Password(true, true, true, false, false, 12),
		Name:     gofakeit.Name(),
	}
}

// registerUser registers a fresh fake user and returns its credentials and auth response.
func (s *IntegrationTestSuite) registerUser(ctx context.Context) (users.RegisterRequest, users.AuthResponse) {
	reg := fakeRegistration()
	resp := s.do(ctx, http.MethodPost, "/api/auth/register", "", reg)
	s.Require().Equal(http.StatusCreated, resp.Status, string(resp.Body))

	var auth users.AuthResponse
	s.Require().NoError(resp.decode(&auth))
	s.Require().NotEmpty(auth.Token)
	return reg, auth
}

// globalExercise inserts a catalog exercise and returns its id.
func (s *IntegrationTestSuite) globalExercise(name string) int64 {
	var id int64
	s.Require().NoError(s.DB.QueryRow(
		`INSERT INTO exercise (name, category, muscle_group) VALUES ($1, 'strength', 'chest') RETURNING id`,
		name,
	).Scan(&id))
	return id
}

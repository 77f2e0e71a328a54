package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dcastro/clientadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return resp
}

func TestLoginEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, _, rawPassword := testutil.NewAccountBuilder().
		WithEmail("api-login@example.com").
		Build(t, ts.DB.DB)

	testutil.NewAccountBuilder().
		WithEmail("api-inactive@example.com").
		WithInactiveCredential().
		Build(t, ts.DB.DB)

	t.Run("successful login returns token", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "api-login@example.com",
			"password": rawPassword,
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var loginResp testutil.LoginResponse
		testutil.AssertJSONResponse(t, resp, &loginResp)
		assert.Equal(t, "Login successful", loginResp.Message)
		assert.NotEmpty(t, loginResp.Token)
	})

	t.Run("temporary password login returns token", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "api-login@example.com",
			"password": ts.Config.TempPassword,
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	tests := []struct {
		name       string
		payload    map[string]string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing email",
			payload:    map[string]string{"password": "whatever"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email is required",
		},
		{
			name:       "malformed email",
			payload:    map[string]string{"email": "not-an-email", "password": "whatever"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email format is invalid",
		},
		{
			name:       "missing password",
			payload:    map[string]string{"email": "api-login@example.com"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Password is required",
		},
		{
			name:       "unknown email",
			payload:    map[string]string{"email": "nobody@example.com", "password": "whatever"},
			wantStatus: http.StatusBadRequest,
			wantError:  "User not found",
		},
		{
			name:       "wrong password",
			payload:    map[string]string{"email": "api-login@example.com", "password": "wrongpassword"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid password",
		},
		{
			name:       "inactive account",
			payload:    map[string]string{"email": "api-inactive@example.com", "password": "testpassword123"},
			wantStatus: http.StatusBadRequest,
			wantError:  "User is inactive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/auth/login"), tt.payload)
			defer resp.Body.Close()

			testutil.AssertErrorResponse(t, resp, tt.wantStatus, tt.wantError)
		})
	}

	t.Run("invalid JSON body", func(t *testing.T) {
		resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid request body")
	})
}

func TestResetPasswordEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, _, rawPassword := testutil.NewAccountBuilder().
		WithEmail("api-reset@example.com").
		Build(t, ts.DB.DB)

	t.Run("successful reset arms the temporary password", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/reset-password"), map[string]string{
			"email": "api-reset@example.com",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		// Old password stops working.
		oldResp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "api-reset@example.com",
			"password": rawPassword,
		})
		defer oldResp.Body.Close()
		testutil.AssertErrorResponse(t, oldResp, http.StatusBadRequest, "Invalid password")

		// The temporary password works.
		tempResp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "api-reset@example.com",
			"password": ts.Config.TempPassword,
		})
		defer tempResp.Body.Close()
		testutil.AssertStatusCode(t, tempResp, http.StatusOK)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/reset-password"), map[string]string{
			"email": "nobody@example.com",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "User not found")
	})

	t.Run("missing email", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/reset-password"), map[string]string{})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Email is required")
	})
}

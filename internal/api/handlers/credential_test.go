package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doAuthedJSON(t *testing.T, method, url, token string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

type credentialEnvelope struct {
	Data    *domain.Credential `json:"data"`
	Message string             `json:"message"`
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewAccountBuilder().
		WithEmail("api-admin@example.com").
		BuildAndAuthenticate(t, ts)

	target, _, targetPassword := testutil.NewAccountBuilder().
		WithEmail("api-target@example.com").
		Build(t, ts.DB.DB)

	url := func(id string) string {
		return ts.APIURL("/credentials/" + id + "/password")
	}

	t.Run("rejects requests without a token", func(t *testing.T) {
		resp := doAuthedJSON(t, http.MethodPut, url(target.ID.String()), "", map[string]string{
			"newPassword":     "changed1",
			"confirmPassword": "changed1",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("administrative change without current password", func(t *testing.T) {
		resp := doAuthedJSON(t, http.MethodPut, url(target.ID.String()), token, map[string]string{
			"newPassword":     "adminset1",
			"confirmPassword": "adminset1",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var envelope credentialEnvelope
		testutil.AssertJSONResponse(t, resp, &envelope)
		assert.Equal(t, "Credential updated successfully", envelope.Message)

		// Old password is superseded.
		loginResp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "api-target@example.com",
			"password": targetPassword,
		})
		defer loginResp.Body.Close()
		testutil.AssertErrorResponse(t, loginResp, http.StatusBadRequest, "Invalid password")
	})

	t.Run("self-service change verifies the current password", func(t *testing.T) {
		resp := doAuthedJSON(t, http.MethodPut, url(target.ID.String()), token, map[string]string{
			"password":        "adminset1",
			"newPassword":     "userset2",
			"confirmPassword": "userset2",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		loginResp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "api-target@example.com",
			"password": "userset2",
		})
		defer loginResp.Body.Close()
		testutil.AssertStatusCode(t, loginResp, http.StatusOK)
	})

	tests := []struct {
		name       string
		id         string
		payload    map[string]string
		wantStatus int
		wantError  string
	}{
		{
			name:       "wrong current password",
			id:         target.ID.String(),
			payload:    map[string]string{"password": "notcurrent", "newPassword": "x1", "confirmPassword": "x1"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Current password is incorrect",
		},
		{
			name:       "mismatched confirmation",
			id:         target.ID.String(),
			payload:    map[string]string{"newPassword": "one", "confirmPassword": "two"},
			wantStatus: http.StatusBadRequest,
			wantError:  "New passwords do not match",
		},
		{
			name:       "present but empty new password",
			id:         target.ID.String(),
			payload:    map[string]string{"newPassword": "", "confirmPassword": "x"},
			wantStatus: http.StatusBadRequest,
			wantError:  "New password cannot be empty",
		},
		{
			name:       "present but empty current password",
			id:         target.ID.String(),
			payload:    map[string]string{"password": ""},
			wantStatus: http.StatusBadRequest,
			wantError:  "Password cannot be empty",
		},
		{
			name:       "unknown user",
			id:         uuid.New().String(),
			payload:    map[string]string{"newPassword": "x1", "confirmPassword": "x1"},
			wantStatus: http.StatusNotFound,
			wantError:  "Credential not found",
		},
		{
			name:       "malformed user id",
			id:         "not-a-uuid",
			payload:    map[string]string{"newPassword": "x1", "confirmPassword": "x1"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid user ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doAuthedJSON(t, http.MethodPut, url(tt.id), token, tt.payload)
			defer resp.Body.Close()

			testutil.AssertErrorResponse(t, resp, tt.wantStatus, tt.wantError)
		})
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewAccountBuilder().
		WithEmail("api-status-admin@example.com").
		BuildAndAuthenticate(t, ts)

	target, _, _ := testutil.NewAccountBuilder().
		WithEmail("api-status-target@example.com").
		Build(t, ts.DB.DB)

	url := ts.APIURL("/credentials/status")

	t.Run("deactivate then reactivate", func(t *testing.T) {
		resp := doAuthedJSON(t, http.MethodPatch, url, token, map[string]interface{}{
			"_id":      target.ID.String(),
			"isActive": false,
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var envelope credentialEnvelope
		testutil.AssertJSONResponse(t, resp, &envelope)
		assert.Equal(t, "Credential deactivated successfully", envelope.Message)
		require.NotNil(t, envelope.Data)
		assert.False(t, envelope.Data.IsActive)

		// The deactivated account can no longer log in.
		loginResp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "api-status-target@example.com",
			"password": "testpassword123",
		})
		defer loginResp.Body.Close()
		testutil.AssertErrorResponse(t, loginResp, http.StatusBadRequest, "User is inactive")

		resp = doAuthedJSON(t, http.MethodPatch, url, token, map[string]interface{}{
			"_id":      target.ID.String(),
			"isActive": true,
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertJSONResponse(t, resp, &envelope)
		assert.Equal(t, "Credential activated successfully", envelope.Message)
		assert.True(t, envelope.Data.IsActive)
	})

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing isActive",
			payload:    map[string]interface{}{"_id": target.ID.String()},
			wantStatus: http.StatusBadRequest,
			wantError:  "isActive is required",
		},
		{
			name:       "malformed user id",
			payload:    map[string]interface{}{"_id": "not-a-uuid", "isActive": true},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid user ID",
		},
		{
			name:       "unknown user",
			payload:    map[string]interface{}{"_id": uuid.New().String(), "isActive": true},
			wantStatus: http.StatusNotFound,
			wantError:  "Credential not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doAuthedJSON(t, http.MethodPatch, url, token, tt.payload)
			defer resp.Body.Close()

			testutil.AssertErrorResponse(t, resp, tt.wantStatus, tt.wantError)
		})
	}

	t.Run("rejects requests without a token", func(t *testing.T) {
		resp := doAuthedJSON(t, http.MethodPatch, url, "", map[string]interface{}{
			"_id":      target.ID.String(),
			"isActive": false,
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})
}

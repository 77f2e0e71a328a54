package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dcastro/clientadmin/internal/testutil"
)

func TestCreateClientEndpoint_ValidatesDNI(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewAccountBuilder().
		WithEmail("api-client-admin@example.com").
		BuildAndAuthenticate(t, ts)

	t.Run("rejects a short DNI", func(t *testing.T) {
		resp := doAuthedJSON(t, http.MethodPost, ts.APIURL("/clients"), token, map[string]string{
			"name":     "Bad",
			"lastName": "Dni",
			"dni":      "123",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "DNI must be at least 10 digits")
	})

	t.Run("accepts a ten-digit DNI", func(t *testing.T) {
		resp := doAuthedJSON(t, http.MethodPost, ts.APIURL("/clients"), token, map[string]string{
			"name":     "Good",
			"lastName": "Dni",
			"dni":      "0912345678",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)
	})
}

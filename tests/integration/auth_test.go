//go:build integration

package integration

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/bkuzmin/participant-registry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawGet issues a GET with an explicit Authorization header value.
func rawGet(t *testing.T, path, authorization string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, testServer.URL+path, nil)
	require.NoError(t, err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestRoot_PublicWithoutCredentials(t *testing.T) {
	resp := rawGet(t, "/", "")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantError     string
	}{
		{
			name:      "missing header",
			wantError: "missing or malformed authorization scheme",
		},
		{
			name:          "bearer scheme",
			authorization: "Bearer sometoken",
			wantError:     "missing or malformed authorization scheme",
		},
		{
			name:          "malformed base64",
			authorization: "Basic !!!not-base64!!!",
			wantError:     "malformed basic auth credentials",
		},
		{
			name:          "empty password",
			authorization: "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:")),
			wantError:     "malformed basic auth credentials",
		},
		{
			name:          "wrong password",
			authorization: "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:wrongpass")),
			wantError:     "invalid credentials",
		},
		{
			name:          "unknown admin",
			authorization: "Basic " + base64.StdEncoding.EncodeToString([]byte("nobody:P4ssword")),
			wantError:     "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := rawGet(t, "/participants", tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Basic")

			var body errorBody
			testutil.DecodeJSON(t, resp, &body)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestAuth_ValidCredentialsPassGate(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/participants")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOpenAPISpec_ServedRegardlessOfWorkingDirectory(t *testing.T) {
	client := newTestClientWithoutValidation()

	resp, err := client.GET("/api/openapi.yaml")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutil.ReadBody(t, resp)
	assert.Contains(t, body, "openapi: 3.0.3")
}

func TestDBTest_ReportsStorageReachable(t *testing.T) {
	client := newTestClientWithoutValidation()

	resp, err := client.GET("/db-test")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Database string `json:"database"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "ok", body.Database)
}

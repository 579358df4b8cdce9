//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/bkuzmin/participant-registry/internal/testutil"
	"github.com/stretchr/testify/require"
)

// participantBody builds a valid create/update payload for the given email.
func participantBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"participant": map[string]interface{}{
			"email":     email,
			"firstname": "A",
			"lastname":  "B",
			"dob":       "1990-01-01",
		},
		"work": map[string]interface{}{
			"companyname": "X",
			"salary":      1000,
			"currency":    "USD",
		},
		"home": map[string]interface{}{
			"country": "C",
			"city":    "D",
		},
	}
}

// createParticipant creates a participant and registers cleanup.
func createParticipant(t *testing.T, client *testutil.Client, email string) {
	t.Helper()

	resp, err := client.POST("/participants/add", participantBody(email))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Cleanup(func() {
		resp, err := client.WithoutValidation().DELETE("/participants/" + email)
		if err == nil {
			_ = resp.Body.Close()
		}
	})
}

// errorBody is the shape of every error response.
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// record mirrors the nested participant response shape.
type record struct {
	Participant struct {
		Email     string `json:"email"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Dob       string `json:"dob"`
	} `json:"participant"`
	Work struct {
		CompanyName string  `json:"companyname"`
		Salary      float64 `json:"salary"`
		Currency    string  `json:"currency"`
	} `json:"work"`
	Home struct {
		Country string `json:"country"`
		City    string `json:"city"`
	} `json:"home"`
}

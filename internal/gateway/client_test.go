package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pullapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFee_DecodesEnvelope(t *testing.T) {
	var gotPath string
	var gotAuth string
	var gotQuery FeeQuery

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotQuery))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 200,
			"commission": 12.5,
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL, APIKey: "secret"})

	env, err := client.GetFee(context.Background(), FeeQuery{
		ReceivingCountry: "FR",
		Currency:         "EUR",
		Country:          "FR",
		Amount:           "500",
		Username:         "jdoe",
		IsWebsite:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, "/transaction/fee", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "FR", gotQuery.ReceivingCountry)
	assert.True(t, env.Ok())
	assert.Equal(t, 200, env.Content.StatusCode)
	assert.Equal(t, 12.5, env.Content.Commission)
}

func TestCreateDeposit_PassesThroughRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/deposit", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode":  422,
			"description": "Invalid document",
			"message":     "Document expired",
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL})

	env, err := client.CreateDeposit(context.Background(), &models.Submission{Amount: "500"})

	require.NoError(t, err)
	assert.False(t, env.Ok())
	assert.Equal(t, 400, env.Status)
	assert.True(t, env.Content.HasErrorShape())
	assert.Equal(t, "Invalid document", env.Content.Description)
	assert.Equal(t, "Document expired", env.Content.Message)
	assert.Equal(t, 422, env.Content.StatusCode)
}

func TestCreatePickup_ToleratesNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL})

	env, err := client.CreatePickup(context.Background(), &models.Submission{Amount: "500"})

	require.NoError(t, err)
	assert.Equal(t, 502, env.Status)
	assert.False(t, env.Content.HasErrorShape())
}

func TestClient_TimeoutIsTransportConcern(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	_, err := client.GetFee(context.Background(), FeeQuery{})
	assert.Error(t, err)
}

package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntentSendsMinorUnits(t *testing.T) {
	var gotForm map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            "pi_test",
			"client_secret": "pi_test_secret",
			"amount":        2050,
			"currency":      "usd",
			"status":        "requires_payment_method",
		})
	}))
	defer server.Close()

	svc := &StripeService{APIBase: server.URL, SecretKey: "sk_test_123", Client: server.Client()}

	intent, err := svc.CreatePaymentIntent(20.50)
	require.NoError(t, err)
	assert.Equal(t, "pi_test_secret", intent.ClientSecret)
	assert.Equal(t, []string{"2050"}, gotForm["amount"])
	assert.Equal(t, []string{"usd"}, gotForm["currency"])
	assert.Equal(t, []string{"card"}, gotForm["payment_method_types[]"])
}

func TestCreatePaymentIntentGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	svc := &StripeService{APIBase: server.URL, SecretKey: "sk_test_123", Client: server.Client()}

	_, err := svc.CreatePaymentIntent(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create payment intent")
}

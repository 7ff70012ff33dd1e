package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	config "github.com/tutorgalaxy/study_platform/configs"
)

type StripeService struct {
	APIBase   string
	SecretKey string
	Client    *http.Client
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

func NewStripeService() *StripeService {
	return &StripeService{
		APIBase:   config.ConfigOr("STRIPE_API_BASE_URL", "https://api.stripe.com"),
		SecretKey: config.Config("STRIPE_SECRET_KEY"),
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePaymentIntent registers the charge with Stripe and returns the
// intent whose client secret the frontend uses to confirm the card
// payment. Amounts are dollars here, cents on the wire.
func (s *StripeService) CreatePaymentIntent(amount float64) (*PaymentIntent, error) {
	cents := int64(math.Round(amount * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(cents, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/payment_intents", s.APIBase), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.SecretKey))

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to create payment intent: %s", string(respBody))
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

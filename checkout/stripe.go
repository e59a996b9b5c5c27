package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeClient creates hosted Checkout Sessions against the Stripe
// HTTP API. Requests are form-encoded the way the v1 API expects;
// amounts go over the wire in minor units exactly as given.
type StripeClient struct {
	APIURL    string
	SecretKey string
	HTTP      *http.Client
}

func NewStripeClient(apiURL, secretKey string) *StripeClient {
	return &StripeClient{
		APIURL:    apiURL,
		SecretKey: secretKey,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

type stripeSessionResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *StripeClient) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	form := url.Values{}
	form.Set("mode", req.Mode)
	for i, method := range req.PaymentMethodTypes {
		form.Set(fmt.Sprintf("payment_method_types[%d]", i), method)
	}
	for i, li := range req.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", li.Currency)
		form.Set(prefix+"[price_data][product_data][name]", li.Name)
		for j, img := range li.Images {
			form.Set(fmt.Sprintf("%s[price_data][product_data][images][%d]", prefix, j), img)
		}
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(li.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(li.Quantity))
	}
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	for i, country := range req.ShippingCountries {
		form.Set(fmt.Sprintf("shipping_address_collection[allowed_countries][%d]", i), country)
	}
	form.Set("metadata[customerEmail]", req.CustomerEmail)
	if req.ClientReferenceID != "" {
		form.Set("client_reference_id", req.ClientReferenceID)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return Session{}, fmt.Errorf("failed to reach payment provider: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var sr stripeSessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return Session{}, fmt.Errorf("failed to parse provider response: %v", err)
	}
	if sr.Error != nil {
		return Session{}, fmt.Errorf("provider error: %s", sr.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return Session{}, fmt.Errorf("provider API error (%d)", resp.StatusCode)
	}
	if sr.URL == "" {
		return Session{}, fmt.Errorf("provider returned empty checkout URL")
	}

	return Session{ID: sr.ID, URL: sr.URL}, nil
}

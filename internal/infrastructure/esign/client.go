package esign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EnvelopeRequest describes one document package routed for signature.
type EnvelopeRequest struct {
	OfferID        string  `json:"offerId"`
	OfferNumber    string  `json:"offerNumber"`
	RecipientEmail string  `json:"recipientEmail"`
	RecipientName  string  `json:"recipientName"`
	OfferAmount    float64 `json:"offerAmount"`
	Currency       string  `json:"currency"`
	Subject        string  `json:"subject"`
}

// Client talks to the e-signature provider's REST API. Envelope creation
// and send are a single call on this provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type envelopeResponse struct {
	EnvelopeID string `json:"envelopeId"`
	Status     string `json:"status"`
}

// CreateAndSend creates the envelope and routes it to the recipient,
// returning the provider-assigned envelope id.
func (c *Client) CreateAndSend(ctx context.Context, req EnvelopeRequest) (string, error) {
	var out envelopeResponse
	if err := c.post(ctx, "/v2/envelopes", req, &out); err != nil {
		return "", err
	}
	return out.EnvelopeID, nil
}

// Void cancels a routed envelope. Terminal envelopes cannot be voided; the
// provider reports that as a 4xx which surfaces as an error here.
func (c *Client) Void(ctx context.Context, envelopeID, reason string) error {
	body := map[string]string{"status": "voided", "voidedReason": reason}
	return c.post(ctx, "/v2/envelopes/"+envelopeID+"/void", body, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("esign: %s returned %d: %s", path, resp.StatusCode, string(b))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Package scorer talks to the external text-scoring API used for automatic
// flagging of watched-chat messages.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"modflow/backend/internal/logger"
)

// Attributes requested from the scoring API, in the order they are reported.
var Attributes = []string{
	"TOXICITY",
	"SEVERE_TOXICITY",
	"IDENTITY_ATTACK",
	"INSULT",
	"PROFANITY",
	"THREAT",
}

// Scorer returns per-attribute probabilities in [0, 1] for a piece of text.
type Scorer interface {
	Score(ctx context.Context, text string) (map[string]float64, error)
}

// Client is the HTTP implementation of Scorer. Requests are retried with
// backoff, the API sheds load aggressively during spikes.
type Client struct {
	url    string
	key    string
	client *retryablehttp.Client
}

func NewClient(url, key string) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.RetryWaitMin = 500 * time.Millisecond
	c.RetryWaitMax = 5 * time.Second
	c.HTTPClient.Timeout = 15 * time.Second
	c.Logger = nil
	return &Client{url: url, key: key, client: c}
}

type scoreRequest struct {
	Comment struct {
		Text string `json:"text"`
	} `json:"comment"`
	Languages           []string            `json:"languages"`
	RequestedAttributes map[string]struct{} `json:"requestedAttributes"`
}

type scoreResponse struct {
	AttributeScores map[string]struct {
		SummaryScore struct {
			Value float64 `json:"value"`
		} `json:"summaryScore"`
	} `json:"attributeScores"`
}

func (c *Client) Score(ctx context.Context, text string) (map[string]float64, error) {
	var body scoreRequest
	body.Comment.Text = text
	body.Languages = []string{"en"}
	body.RequestedAttributes = make(map[string]struct{}, len(Attributes))
	for _, attr := range Attributes {
		body.RequestedAttributes[attr] = struct{}{}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("scorer: encoding request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url+"?key="+c.key, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("scorer: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scorer: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorer: unexpected status %d", resp.StatusCode)
	}

	var parsed scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("scorer: decoding response: %w", err)
	}

	scores := make(map[string]float64, len(parsed.AttributeScores))
	for attr, detail := range parsed.AttributeScores {
		scores[attr] = detail.SummaryScore.Value
	}
	logger.Log.WithField("attributes", len(scores)).Debug("text scored")
	return scores, nil
}

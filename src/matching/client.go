// Package matching forwards item descriptions to the external matching service.
//
// The service owns the matching itself; this package only builds the request
// body, performs the call and hands back whatever the service answered.
package matching

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Valid reports whether t is one of the known discriminators.
func (t ItemType) Valid() bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

const DefaultTimeout = 10 * time.Second

// emptyResult is returned whenever the matching service could not be reached
// or answered with something unusable. Each call gets its own buffer.
func emptyResult() json.RawMessage {
	return json.RawMessage("[]")
}

// MatchRequest is the wire body expected by POST /match.
type MatchRequest struct {
	LostDesc  string `json:"lost_desc"`
	FoundDesc string `json:"found_desc"`
}

// NewMatchRequest places the description in the field named by the discriminator.
// Any other discriminator leaves both fields empty.
func NewMatchRequest(description string, itemType ItemType) MatchRequest {
	req := MatchRequest{}
	switch itemType {
	case ItemTypeLost:
		req.LostDesc = description
	case ItemTypeFound:
		req.FoundDesc = description
	}
	return req
}

type Client struct {
	endpoint string
	timeout  time.Duration
	log      zerolog.Logger
}

// NewClient targets baseURL + "/match". A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: baseURL + "/match",
		timeout:  timeout,
		log:      log,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// FindPotentialMatches returns the service's reply body unchanged, or an empty list
// after logging the failure. Callers cannot tell "no matches" from "request failed".
func (c *Client) FindPotentialMatches(description string, itemType ItemType) json.RawMessage {
	body, err := c.post(NewMatchRequest(description, itemType))
	if err != nil {
		c.log.Error().
			Err(err).
			Str("endpoint", c.endpoint).
			Str("type", string(itemType)).
			Msg("Error calling matching service")
		return emptyResult()
	}
	return body
}

func (c *Client) post(req MatchRequest) (json.RawMessage, error) {
	agent := fiber.Post(c.endpoint)
	agent.JSON(req)
	agent.Timeout(c.timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("matching service returned status %d", code)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("matching service returned a malformed body (%d bytes)", len(body))
	}
	return json.RawMessage(body), nil
}

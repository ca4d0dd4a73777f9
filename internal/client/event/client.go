package event

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/eventlink/chat-service/internal/config"
	"github.com/eventlink/chat-service/internal/model"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Event.BaseURL,
		apiKey:  cfg.Event.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Event.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// GetEvent fetches the event's current participant list and creator. The
// result is never cached: membership can change over the room's lifetime.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*model.EventInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/events/%s", c.baseURL, eventID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrEventNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Id           string   `json:"id"`
		Participants []string `json:"participants"`
		CreatedBy    string   `json:"created_by"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	info := model.EventInfo{}

	info.ID, err = uuid.Parse(payload.Id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event id: %w", err)
	}

	info.Creator, err = uuid.Parse(payload.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event creator id: %w", err)
	}

	for _, p := range payload.Participants {
		participantID, err := uuid.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse participant id: %w", err)
		}
		info.Participants = append(info.Participants, participantID)
	}

	return &info, nil
}

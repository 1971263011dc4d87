package notice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the external notice service. Callers treat delivery as
// best-effort and never let an error here affect the triggering operation.
type Client struct {
	BaseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type noticeRequest struct {
	UserID      uint   `json:"user_id"`
	GameID      uint   `json:"game_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Username    string `json:"username"`
	GameURL     string `json:"game_url"`
	Publisher   string `json:"publisher"`
}

// CreateNotice posts a purchase notice. Any non-2xx response is an error.
func (c *Client) CreateNotice(userID, gameID uint, title, description, username, gameURL, publisherName string) error {
	body, _ := json.Marshal(noticeRequest{
		UserID:      userID,
		GameID:      gameID,
		Title:       title,
		Description: description,
		Username:    username,
		GameURL:     gameURL,
		Publisher:   publisherName,
	})
	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notice service returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

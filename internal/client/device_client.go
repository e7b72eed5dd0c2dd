package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"naradamuni/internal/models"
)

const listenPath = "/naradamuni/listen"

// DeviceClient pushes readings to a bridge the way a field device does.
type DeviceClient struct {
	client *resty.Client
}

// NewDeviceClient creates a client for the bridge at baseURL.
func NewDeviceClient(baseURL string, timeout time.Duration) *DeviceClient {
	return &DeviceClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// Push sends reading to the listen endpoint. Any status other than 201 is an error.
func (c *DeviceClient) Push(ctx context.Context, reading models.Reading) error {
	return c.PushPayload(ctx, reading.Payload())
}

// PushPayload sends an already string-encoded payload.
func (c *DeviceClient) PushPayload(ctx context.Context, payload models.ListenRequest) error {
	var apiErr models.APIError
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(&apiErr).
		Post(listenPath)
	if err != nil {
		return fmt.Errorf("failed to push reading: %w", err)
	}

	if resp.StatusCode() != http.StatusCreated {
		if apiErr.Code != "" {
			apiErr.StatusCode = resp.StatusCode()
			return fmt.Errorf("bridge rejected reading: %w", apiErr)
		}
		return fmt.Errorf("bridge rejected reading: %s: %s", resp.Status(), resp.Body())
	}
	return nil
}

package reservationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	reservationsPath = "/api/reservations"
	cancelPath       = "/api/reservations/cancel"

	// maxErrorBody сколько байт тела ответа попадает в текст ошибки
	maxErrorBody = 512
)

// Client клиент для удаленного Reservation Service.
// Ответ сервиса не разбирается: учитывается только код 2xx или иной.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Reservation Service
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyReservation сообщает об успешном бронировании места
func (c *Client) NotifyReservation(ctx context.Context, n ReservationNotification) error {
	if err := c.post(ctx, reservationsPath, n); err != nil {
		c.log.Warn("NotifyReservation: spot=%d: %v", n.SpotID, err)
		return err
	}
	c.log.Info("NotifyReservation: delivered for spot=%d", n.SpotID)
	return nil
}

// NotifyCancellation сообщает об освобождении места
func (c *Client) NotifyCancellation(ctx context.Context, n CancellationNotification) error {
	if err := c.post(ctx, cancelPath, n); err != nil {
		c.log.Warn("NotifyCancellation: spot=%d: %v", n.SpotID, err)
		return err
	}
	c.log.Info("NotifyCancellation: delivered for spot=%d type=%s count=%d", n.SpotID, n.Type, n.Count)
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrNotificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %w: unexpected status code %d: %s",
			ErrNotificationFailed, ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Дочитываем тело, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

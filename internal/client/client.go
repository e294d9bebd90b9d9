package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"hrmail_backend/internal/compose"
	"hrmail_backend/internal/email"
	"hrmail_backend/internal/logger"
)

// ErrSendInProgress is returned when a second send is attempted while one is
// already in flight for this client.
var ErrSendInProgress = errors.New("a send is already in progress")

// ErrSendFailed is the single generic failure the operator sees. Transport
// detail stays in the logs.
var ErrSendFailed = errors.New("failed to send email, please try again")

// Client submits rendered emails to the mail dispatch service. One client
// corresponds to one compose session: it allows a single in-flight send and
// rejects concurrent attempts.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sending    atomic.Bool
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Sending reports whether a dispatch is currently in flight.
func (c *Client) Sending() bool {
	return c.sending.Load()
}

// Send posts the rendered email as multipart/form-data and blocks until the
// service responds. Only the first attachment is transmitted: the service
// accepts a single file part, and the rest of the list is deliberately
// ignored rather than silently merged.
func (c *Client) Send(ctx context.Context, rendered email.Rendered, attachments []compose.Attachment) error {
	if !c.sending.CompareAndSwap(false, true) {
		return ErrSendInProgress
	}
	defer c.sending.Store(false)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := c.writeForm(writer, rendered, attachments); err != nil {
		logger.CtxWithError(ctx, "failed to build dispatch payload", err)
		return ErrSendFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/mail/send", body)
	if err != nil {
		logger.CtxWithError(ctx, "failed to build dispatch request", err)
		return ErrSendFailed
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.CtxWithError(ctx, "mail dispatch request failed", err, "to", rendered.To)
		return ErrSendFailed
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logger.CtxWarn(ctx, "mail dispatch rejected", "status", res.StatusCode, "to", rendered.To)
		return ErrSendFailed
	}

	return nil
}

func (c *Client) writeForm(writer *multipart.Writer, rendered email.Rendered, attachments []compose.Attachment) error {
	fields := map[string]string{
		"to":        rendered.To,
		"subject":   rendered.Subject,
		"plaintext": rendered.Plaintext,
		"html":      rendered.HTML,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if len(attachments) > 0 {
		first := attachments[0]
		part, err := writer.CreateFormFile("file", first.Filename)
		if err != nil {
			return fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, first.Content); err != nil {
			return fmt.Errorf("copy attachment: %w", err)
		}
	}

	return writer.Close()
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hrmail_backend/internal/dto"
	"hrmail_backend/internal/email"
	"hrmail_backend/internal/storage"
	"hrmail_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	sent     []*email.Message
	failWith error
}

func (p *stubProvider) Send(m *email.Message) error {
	p.sent = append(p.sent, m)
	return p.failWith
}

func (p *stubProvider) Validate() error { return nil }
func (p *stubProvider) Close() error    { return nil }

func newTestService(t *testing.T, provider email.Provider) (*MailService, storage.Storage) {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return NewMailService(provider, store), store
}

func testRequest() dto.SendMailRequest {
	return dto.SendMailRequest{
		To:        "asha@example.com",
		Subject:   "Offer / Joining Letter — Acme Tech — Asha Patel",
		Plaintext: "Dear Asha Patel, ...",
		HTML:      "<p>Dear Asha Patel</p>",
	}
}

func TestSaveUpload(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, &stubProvider{})

	up, err := svc.SaveUpload(ctx, "offer.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "offer.pdf", up.Filename)
	assert.True(t, strings.HasPrefix(up.Path, "tmp/"))
	assert.True(t, strings.HasSuffix(up.Path, ".pdf"))

	exists, err := store.Exists(ctx, up.Path)
	require.NoError(t, err)
	assert.True(t, exists)

	// A second upload of the same filename must land at a different path.
	up2, err := svc.SaveUpload(ctx, "offer.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.NotEqual(t, up.Path, up2.Path)
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("without attachment", func(t *testing.T) {
		provider := &stubProvider{}
		svc, _ := newTestService(t, provider)

		require.NoError(t, svc.Dispatch(ctx, testRequest(), nil))
		require.Len(t, provider.sent, 1)
		assert.Equal(t, "asha@example.com", provider.sent[0].To)
		assert.Empty(t, provider.sent[0].Attachments)
	})

	t.Run("upload released after successful delivery", func(t *testing.T) {
		provider := &stubProvider{}
		svc, store := newTestService(t, provider)

		up, err := svc.SaveUpload(ctx, "offer.pdf", strings.NewReader("%PDF"))
		require.NoError(t, err)

		require.NoError(t, svc.Dispatch(ctx, testRequest(), up))

		exists, err := store.Exists(ctx, up.Path)
		require.NoError(t, err)
		assert.False(t, exists, "temp upload must be removed after delivery")
	})

	t.Run("upload released after failed delivery too", func(t *testing.T) {
		provider := &stubProvider{failWith: errors.New("relay down")}
		svc, store := newTestService(t, provider)

		up, err := svc.SaveUpload(ctx, "offer.pdf", strings.NewReader("%PDF"))
		require.NoError(t, err)

		err = svc.Dispatch(ctx, testRequest(), up)
		require.Error(t, err)
		assert.True(t, apperrors.IsDelivery(err))

		exists, err := store.Exists(ctx, up.Path)
		require.NoError(t, err)
		assert.False(t, exists, "temp upload must be removed after a failed delivery")
	})

	t.Run("delivery error carries the canned message", func(t *testing.T) {
		provider := &stubProvider{failWith: errors.New("smtp: 535 auth failed")}
		svc, _ := newTestService(t, provider)

		err := svc.Dispatch(ctx, testRequest(), nil)
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Failed to send email", appErr.Message)
		assert.Equal(t, 500, appErr.HTTPCode)
	})
}

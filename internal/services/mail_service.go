package services

import (
	"context"
	"io"
	"path"
	"path/filepath"

	"hrmail_backend/internal/dto"
	"hrmail_backend/internal/email"
	"hrmail_backend/internal/logger"
	"hrmail_backend/internal/storage"
	"hrmail_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// MailService performs the server side of a dispatch: it owns the upload
// lifecycle and the single relay attempt per request. The relay provider is
// injected once at construction and shared by concurrent requests.
type MailService struct {
	provider email.Provider
	store    storage.Storage
}

func NewMailService(provider email.Provider, store storage.Storage) *MailService {
	return &MailService{
		provider: provider,
		store:    store,
	}
}

// TempUpload is the attachment of one in-flight request, already written to
// transient storage under a per-upload unique name.
type TempUpload struct {
	Filename string // display name from the form
	Path     string // storage-relative location
}

// SaveUpload writes an incoming file part into temp storage. Names are
// unique per upload so concurrent requests never collide.
func (s *MailService) SaveUpload(ctx context.Context, filename string, r io.Reader) (*TempUpload, error) {
	p := path.Join("tmp", uuid.NewString()+filepath.Ext(filename))

	if err := s.store.Save(ctx, p, r); err != nil {
		return nil, apperrors.ErrStorageFailed(err)
	}

	logger.CtxDebug(ctx, "temporary upload stored", "path", p, "filename", filename)
	return &TempUpload{Filename: filename, Path: p}, nil
}

// Dispatch assembles the outbound message and makes exactly one relay
// attempt. The temp upload, if any, is released after the relay outcome on
// every exit path: a failed delivery must not leak storage.
func (s *MailService) Dispatch(ctx context.Context, req dto.SendMailRequest, upload *TempUpload) error {
	msg := &email.Message{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Plaintext,
		HTML:    req.HTML,
	}

	if upload != nil {
		msg.Attachments = append(msg.Attachments, email.Attachment{
			Name: upload.Filename,
			Path: s.store.FullPath(upload.Path),
		})
		defer s.release(ctx, upload)
	}

	if err := s.provider.Send(msg); err != nil {
		return apperrors.ErrDeliveryFailed(err)
	}

	logger.CtxInfo(ctx, "email delivered", "to", req.To, "subject", req.Subject)
	return nil
}

// release deletes a temp upload. Cleanup failures are logged, never
// propagated: delivery success is not held hostage to cleanup success.
func (s *MailService) release(ctx context.Context, upload *TempUpload) {
	if err := s.store.Delete(ctx, upload.Path); err != nil {
		logger.CtxWithError(ctx, "failed to delete temporary upload", err, "path", upload.Path)
	}
}

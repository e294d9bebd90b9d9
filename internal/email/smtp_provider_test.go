package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMTPProviderValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults alone are not sendable, sender is missing", func(t *testing.T) {
		p := NewSMTPProvider(DefaultConfig())
		assert.Error(t, p.Validate())
	})

	t.Run("complete config validates", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Host = "smtp.example.com"
		cfg.FromEmail = "hr@example.com"
		p := NewSMTPProvider(cfg)
		assert.NoError(t, p.Validate())
	})

	t.Run("empty host is rejected", func(t *testing.T) {
		p := NewSMTPProvider(&SMTPConfig{Port: 587, FromEmail: "hr@example.com"})
		assert.Error(t, p.Validate())
	})

	t.Run("out of range port is rejected", func(t *testing.T) {
		p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 70000, FromEmail: "hr@example.com"})
		assert.Error(t, p.Validate())
	})
}

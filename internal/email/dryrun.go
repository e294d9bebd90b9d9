package email

import "log/slog"

// DryRunProvider logs outgoing mail instead of dialing a relay. It is wired
// in when SMTP credentials are absent so local development stays runnable.
type DryRunProvider struct {
	Log *slog.Logger
}

func (p *DryRunProvider) Send(m *Message) error {
	names := make([]string, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		names = append(names, a.Name)
	}
	p.Log.Info("dry-run email (relay disabled)",
		"to", m.To,
		"subject", m.Subject,
		"attachments", names,
	)
	return nil
}

func (p *DryRunProvider) Validate() error { return nil }

func (p *DryRunProvider) Close() error { return nil }

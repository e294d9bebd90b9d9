package email

// Type identifies which registered template an outgoing email is built from.
// The values are the exact keys the browser form submits.
type Type string

const (
	TypeShortlisted     Type = "SHORTLISTED"
	TypeInterviewTiming Type = "INTERVIEW TIMING"
	TypeAskDetails      Type = "ASK DETAILS"
	TypeProvide         Type = "PROVIDE"
	TypeLetters         Type = "LETTERS"
)

// Mode is the interview mode for INTERVIEW TIMING emails.
type Mode string

const (
	ModeOnline  Mode = "Online"
	ModeOffline Mode = "Offline"
	ModeHybrid  Mode = "Hybrid"
)

// Data is the substitution context for one email: the candidate record the
// operator is editing. Missing values render as empty strings, never errors.
type Data struct {
	To              string
	Name            string
	Email           string
	Type            Type
	Company         string
	Position        string
	Date            string
	Time            string
	Mode            Mode
	Deadline        string
	AdditionalNotes string
}

// Fields returns the placeholder-name -> value view of the record. The keys
// match the {{TOKEN}} spelling used inside the templates.
func (d Data) Fields() map[string]string {
	return map[string]string{
		"NAME":             d.Name,
		"EMAIL":            d.Email,
		"TYPE":             string(d.Type),
		"COMPANY":          d.Company,
		"POSITION":         d.Position,
		"DATE":             d.Date,
		"TIME":             d.Time,
		"MODE":             string(d.Mode),
		"DEADLINE":         d.Deadline,
		"ADDITIONAL_NOTES": d.AdditionalNotes,
	}
}

// Rendered is a fully substituted email, ready to preview or dispatch.
// Recomputed from scratch on every draft change, never mutated in place.
type Rendered struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Plaintext string `json:"plaintext"`
	HTML      string `json:"html"`
}

// Attachment references a file already written to server-side storage.
type Attachment struct {
	Name string // display filename shown to the recipient
	Path string // storage location on disk
}

// Message is the transport-level form handed to the relay provider. The
// envelope sender is fixed by the provider's configuration.
type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

package compose

import (
	"io"

	"hrmail_backend/internal/email"
)

// DefaultCompany is the fixed company name a fresh draft starts with.
const DefaultCompany = "Arinova Studio"

// Field names the editable keys of a draft. The spelling matches the
// template placeholder tokens.
type Field string

const (
	FieldName            Field = "NAME"
	FieldEmail           Field = "EMAIL"
	FieldType            Field = "TYPE"
	FieldCompany         Field = "COMPANY"
	FieldPosition        Field = "POSITION"
	FieldDate            Field = "DATE"
	FieldTime            Field = "TIME"
	FieldMode            Field = "MODE"
	FieldDeadline        Field = "DEADLINE"
	FieldAdditionalNotes Field = "ADDITIONAL_NOTES"
)

// extraFields maps an email type to the optional fields that become visible
// and required for it. The same table drives UI visibility and send
// validation so the two can never drift apart.
var extraFields = map[email.Type][]Field{
	email.TypeShortlisted:     {},
	email.TypeInterviewTiming: {FieldPosition, FieldDate, FieldTime, FieldMode},
	email.TypeAskDetails:      {},
	email.TypeProvide:         {FieldDeadline},
	email.TypeLetters:         {FieldPosition},
}

// attachmentTypes are the email types that expose the attachment slot.
var attachmentTypes = map[email.Type]bool{
	email.TypeProvide: true,
	email.TypeLetters: true,
}

// Attachment is a file picked by the operator, not yet uploaded anywhere.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// Draft is one in-progress compose session. Drafts have value semantics:
// every edit returns a fresh snapshot and leaves the receiver untouched, so
// consumers holding the previous snapshot always observe consistent state.
type Draft struct {
	Data        email.Data
	Attachments []Attachment
}

// NewDraft returns the draft a compose session starts with.
func NewDraft() Draft {
	return Draft{
		Data: email.Data{
			Type:    email.TypeShortlisted,
			Company: DefaultCompany,
		},
	}
}

// WithField returns a copy of the draft with one field replaced.
func (d Draft) WithField(f Field, value string) Draft {
	next := d.clone()
	switch f {
	case FieldName:
		next.Data.Name = value
	case FieldEmail:
		// Compound update: the delivery address always follows EMAIL.
		next.Data.Email = value
		next.Data.To = value
	case FieldType:
		next.Data.Type = email.Type(value)
	case FieldCompany:
		next.Data.Company = value
	case FieldPosition:
		next.Data.Position = value
	case FieldDate:
		next.Data.Date = value
	case FieldTime:
		next.Data.Time = value
	case FieldMode:
		next.Data.Mode = email.Mode(value)
	case FieldDeadline:
		next.Data.Deadline = value
	case FieldAdditionalNotes:
		next.Data.AdditionalNotes = value
	}
	return next
}

// WithType switches the email type, which changes which fields are visible.
func (d Draft) WithType(t email.Type) Draft {
	next := d.clone()
	next.Data.Type = t
	return next
}

// AddAttachment appends a file to the end of the attachment list.
func (d Draft) AddAttachment(a Attachment) Draft {
	next := d.clone()
	next.Attachments = append(next.Attachments, a)
	return next
}

// RemoveAttachment drops the file at index i, preserving the relative order
// of the rest. Out-of-range indexes are ignored.
func (d Draft) RemoveAttachment(i int) Draft {
	if i < 0 || i >= len(d.Attachments) {
		return d
	}
	next := d.clone()
	next.Attachments = append(next.Attachments[:i], next.Attachments[i+1:]...)
	return next
}

// VisibleExtraFields returns the optional fields shown for the current type.
func (d Draft) VisibleExtraFields() []Field {
	return extraFields[d.Data.Type]
}

// ShowsAttachmentSlot reports whether the current type offers attachments.
func (d Draft) ShowsAttachmentSlot() bool {
	return attachmentTypes[d.Data.Type]
}

// MissingFields returns the required fields still empty for the current
// type. NAME and EMAIL are required for every type; the rest comes from the
// visibility table.
func (d Draft) MissingFields() []Field {
	var missing []Field
	if d.Data.Name == "" {
		missing = append(missing, FieldName)
	}
	if d.Data.Email == "" {
		missing = append(missing, FieldEmail)
	}
	for _, f := range extraFields[d.Data.Type] {
		if d.fieldValue(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Rendered recomputes the preview from the current snapshot. Synchronous,
// no I/O: safe to call on every keystroke.
func (d Draft) Rendered() email.Rendered {
	return email.Render(d.Data)
}

func (d Draft) fieldValue(f Field) string {
	return d.Data.Fields()[string(f)]
}

func (d Draft) clone() Draft {
	next := d
	next.Attachments = make([]Attachment, len(d.Attachments))
	copy(next.Attachments, d.Attachments)
	return next
}

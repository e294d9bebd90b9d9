package compose

import (
	"strings"
	"testing"

	"hrmail_backend/internal/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	assert.Equal(t, email.TypeShortlisted, d.Data.Type)
	assert.Equal(t, DefaultCompany, d.Data.Company)
	assert.Empty(t, d.Data.Name)
	assert.Empty(t, d.Data.Email)
	assert.Empty(t, d.Data.To)
}

func TestDraftFieldEdits(t *testing.T) {
	t.Parallel()

	t.Run("editing EMAIL also sets the delivery address", func(t *testing.T) {
		d := NewDraft().WithField(FieldEmail, "candidate@example.com")
		assert.Equal(t, "candidate@example.com", d.Data.Email)
		assert.Equal(t, "candidate@example.com", d.Data.To)
	})

	t.Run("edits return snapshots, previous draft is untouched", func(t *testing.T) {
		before := NewDraft().WithField(FieldName, "Asha Patel")
		after := before.WithField(FieldName, "Someone Else")
		assert.Equal(t, "Asha Patel", before.Data.Name)
		assert.Equal(t, "Someone Else", after.Data.Name)
	})

	t.Run("every field is editable", func(t *testing.T) {
		d := NewDraft().
			WithField(FieldPosition, "Software Engineer").
			WithField(FieldDate, "2025-01-10").
			WithField(FieldTime, "14:00").
			WithField(FieldMode, "Online").
			WithField(FieldDeadline, "2025-02-01").
			WithField(FieldAdditionalNotes, "bring ID")

		fields := d.Data.Fields()
		assert.Equal(t, "Software Engineer", fields["POSITION"])
		assert.Equal(t, "2025-01-10", fields["DATE"])
		assert.Equal(t, "14:00", fields["TIME"])
		assert.Equal(t, "Online", fields["MODE"])
		assert.Equal(t, "2025-02-01", fields["DEADLINE"])
		assert.Equal(t, "bring ID", fields["ADDITIONAL_NOTES"])
	})
}

func TestDraftVisibilityTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ        email.Type
		extra      []Field
		attachment bool
	}{
		{email.TypeShortlisted, nil, false},
		{email.TypeInterviewTiming, []Field{FieldPosition, FieldDate, FieldTime, FieldMode}, false},
		{email.TypeAskDetails, nil, false},
		{email.TypeProvide, []Field{FieldDeadline}, true},
		{email.TypeLetters, []Field{FieldPosition}, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			d := NewDraft().WithType(tc.typ)
			assert.ElementsMatch(t, tc.extra, d.VisibleExtraFields())
			assert.Equal(t, tc.attachment, d.ShowsAttachmentSlot())
		})
	}
}

func TestDraftMissingFields(t *testing.T) {
	t.Parallel()

	t.Run("fresh draft misses name and email", func(t *testing.T) {
		missing := NewDraft().MissingFields()
		assert.ElementsMatch(t, []Field{FieldName, FieldEmail}, missing)
	})

	t.Run("type switch changes what is required", func(t *testing.T) {
		d := NewDraft().
			WithField(FieldName, "Asha Patel").
			WithField(FieldEmail, "asha@example.com").
			WithType(email.TypeInterviewTiming)

		assert.ElementsMatch(t,
			[]Field{FieldPosition, FieldDate, FieldTime, FieldMode},
			d.MissingFields())

		d = d.WithField(FieldPosition, "Software Engineer").
			WithField(FieldDate, "2025-01-10").
			WithField(FieldTime, "14:00").
			WithField(FieldMode, "Online")
		assert.Empty(t, d.MissingFields())
	})
}

func TestDraftAttachments(t *testing.T) {
	t.Parallel()

	a := Attachment{Filename: "a.pdf", Content: strings.NewReader("a")}
	b := Attachment{Filename: "b.pdf", Content: strings.NewReader("b")}
	c := Attachment{Filename: "c.pdf", Content: strings.NewReader("c")}

	d := NewDraft().AddAttachment(a).AddAttachment(b).AddAttachment(c)
	require.Len(t, d.Attachments, 3)

	t.Run("remove by index preserves order", func(t *testing.T) {
		got := d.RemoveAttachment(1)
		require.Len(t, got.Attachments, 2)
		assert.Equal(t, "a.pdf", got.Attachments[0].Filename)
		assert.Equal(t, "c.pdf", got.Attachments[1].Filename)
		// original snapshot keeps all three
		assert.Len(t, d.Attachments, 3)
	})

	t.Run("out of range index is ignored", func(t *testing.T) {
		assert.Len(t, d.RemoveAttachment(-1).Attachments, 3)
		assert.Len(t, d.RemoveAttachment(3).Attachments, 3)
	})
}

func TestDraftRendered(t *testing.T) {
	t.Parallel()

	d := NewDraft().
		WithField(FieldName, "Asha Patel").
		WithField(FieldEmail, "asha@example.com")

	got := d.Rendered()
	assert.Equal(t, "asha@example.com", got.To)
	assert.Equal(t, "Congratulations Asha Patel — You've Been Shortlisted!", got.Subject)
}

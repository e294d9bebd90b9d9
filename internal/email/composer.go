package email

// Render builds the preview/dispatch form of a draft record. It looks up the
// template for d.Type (falling back for unknown types), substitutes the full
// field set into subject, plaintext and html independently, and copies the
// delivery address through unchanged.
//
// Render is pure and total: incomplete data yields empty substitutions, so
// the preview always produces something sensible mid-edit.
func Render(d Data) Rendered {
	tpl := LookupTemplate(d.Type)
	fields := d.Fields()

	return Rendered{
		To:        d.To,
		Subject:   Substitute(tpl.Subject, fields),
		Plaintext: Substitute(tpl.Plaintext, fields),
		HTML:      Substitute(tpl.HTML, fields),
	}
}

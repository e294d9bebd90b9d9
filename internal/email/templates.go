package email

// Template is the immutable (subject, plaintext, html) triple registered for
// one email type. Bodies carry {{TOKEN}} placeholders; every token must name
// a field of Data so that substitution is always total.
type Template struct {
	Subject   string
	Plaintext string
	HTML      string
}

var templates = map[Type]Template{
	TypeShortlisted: {
		Subject: "Congratulations {{NAME}} — You've Been Shortlisted!",
		Plaintext: `Dear {{NAME}},

We are pleased to inform you that you have been shortlisted for the next stage of our selection process. Your application impressed our recruitment panel.

We will contact you shortly with further interview details.

Best regards,
HR Team
{{COMPANY}}`,
		HTML: `<div style='font-family:Segoe UI,Arial,sans-serif;max-width:650px'><h2 style='color:#1a73e8'>Dear {{NAME}},</h2><p>We are pleased to inform you that you have been <strong style='color:#1a73e8'>shortlisted</strong> for the next stage of our selection process. Your application impressed our recruitment panel.</p><p>We will contact you shortly with further interview details.</p><p>Best regards,<br><strong>HR Team</strong><br>{{COMPANY}}</p><p style='font-size:12px;color:#777'>This is an automated email sent to {{EMAIL}}.</p></div>`,
	},
	TypeInterviewTiming: {
		Subject: "Interview Schedule — {{POSITION}} — {{NAME}}",
		Plaintext: `Dear {{NAME}},

Your interview for the position of {{POSITION}} has been scheduled as follows:

Date: {{DATE}}
Time: {{TIME}}
Mode: {{MODE}}

Please confirm your availability by replying to this email.

Regards,
HR Team
{{COMPANY}}`,
		HTML: `<div style='font-family:Segoe UI,Arial,sans-serif;max-width:650px'><h2 style='color:#1a73e8'>Interview Schedule</h2><p>Candidate: <strong>{{NAME}}</strong></p><p>Position: <strong>{{POSITION}}</strong></p><ul><li><strong>Date:</strong> {{DATE}}</li><li><strong>Time:</strong> {{TIME}}</li><li><strong>Mode:</strong> {{MODE}}</li></ul><p>Please confirm your availability by replying to this email.</p><p>Regards,<br><strong>HR Team</strong><br>{{COMPANY}}</p></div>`,
	},
	TypeAskDetails: {
		Subject: "Request for Additional Details — {{NAME}}",
		Plaintext: `Hello {{NAME}},

To proceed with your application, please provide the following:
- Full Name (as per ID proof)
- Contact Number
- Updated Resume
- Any other relevant documents

Reply with the requested items at your earliest convenience.

Thank you,
HR Department
{{COMPANY}}`,
		HTML: `<div style='font-family:Segoe UI,Arial,sans-serif;max-width:650px'><h2 style='color:#1a73e8'>Request for Additional Details</h2><p>Hello <strong>{{NAME}}</strong>,</p><p>To proceed with your application, please provide the following:</p><ul><li>Full Name (as per ID proof)</li><li>Contact Number</li><li>Updated Resume</li><li>Any other relevant documents</li></ul><p>Reply with the requested items at your earliest convenience.</p><p>Thank you,<br><strong>HR Department</strong><br>{{COMPANY}}</p></div>`,
	},
	TypeProvide: {
		Subject: "Required Documents — Action Needed — {{NAME}}",
		Plaintext: `Dear {{NAME}},

Please find attached the required documents/forms to be filled and returned by {{DEADLINE}}.

If you have any questions, reply to this email.

Warm regards,
HR Department
{{COMPANY}}`,
		HTML: `<div style='font-family:Segoe UI,Arial,sans-serif;max-width:650px'><h2 style='color:#1a73e8'>Documents to Provide</h2><p>Dear <strong>{{NAME}}</strong>,</p><p>Please find attached the required documents/forms. Kindly complete and return them by <strong>{{DEADLINE}}</strong>.</p><p>If you have questions, reply to this email.</p><p>Warm regards,<br><strong>HR Department</strong><br>{{COMPANY}}</p></div>`,
	},
	TypeLetters: {
		Subject: "Offer / Joining Letter — {{COMPANY}} — {{NAME}}",
		Plaintext: `Dear {{NAME}},

Congratulations! We are delighted to offer you the position of {{POSITION}} at {{COMPANY}}.

Your offer/joining letter is attached. Please review and acknowledge by replying with your acceptance.

We look forward to having you onboard.

Sincerely,
HR Team
{{COMPANY}}`,
		HTML: `<div style='font-family:Segoe UI,Arial,sans-serif;max-width:650px'><h2 style='color:#1a73e8'>Offer Letter</h2><p>Dear <strong>{{NAME}}</strong>,</p><p>Congratulations! We are delighted to offer you the position of <strong>{{POSITION}}</strong> at <strong>{{COMPANY}}</strong>.</p><p>Your offer/joining letter is attached. Please review and acknowledge by replying with your acceptance.</p><p>Sincerely,<br><strong>HR Team</strong><br>{{COMPANY}}</p></div>`,
	},
}

var fallbackTemplate = Template{
	Subject: "Message from {{COMPANY}} — {{NAME}}",
	Plaintext: `Hello {{NAME}},

This is an automated message from {{COMPANY}} regarding your application. Please contact HR for more details.

Regards,
HR Team`,
	HTML: `<div style='font-family:Segoe UI,Arial,sans-serif;max-width:650px'><p>Hello {{NAME}},</p><p>This is an automated message from {{COMPANY}} regarding your application. Please contact HR for more details.</p><p>Regards,<br><strong>HR Team</strong></p></div>`,
}

// LookupTemplate returns the template registered for t, or the fallback
// template when t is unknown. Lookup is total: there is no error path.
func LookupTemplate(t Type) Template {
	if tpl, ok := templates[t]; ok {
		return tpl
	}
	return fallbackTemplate
}

// RegisteredTypes returns the email types with a dedicated template.
func RegisteredTypes() []Type {
	types := make([]Type, 0, len(templates))
	for t := range templates {
		types = append(types, t)
	}
	return types
}

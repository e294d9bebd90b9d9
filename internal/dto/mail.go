package dto

// SendMailRequest is the multipart form body of POST /api/mail/send. The
// optional "file" part is read separately from the request.
type SendMailRequest struct {
	To        string `form:"to" validate:"required"`
	Subject   string `form:"subject" validate:"required"`
	Plaintext string `form:"plaintext" validate:"required"`
	HTML      string `form:"html" validate:"required"`
}

// SendMailResponse is the terminal response of one dispatch attempt.
type SendMailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

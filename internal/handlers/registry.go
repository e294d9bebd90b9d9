package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	MailHandler *MailHandler
}

package email

// Provider определяет интерфейс для отправки email через внешний relay.
type Provider interface {
	// Send отправляет одно собранное сообщение. Ровно два исхода:
	// nil (relay подтвердил доставку) или ошибка.
	Send(m *Message) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}

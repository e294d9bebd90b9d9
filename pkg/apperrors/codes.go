package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeUnknownError         ErrorCode = "UNKNOWN_ERROR"

	// Ошибки границы диспетчеризации
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeDeliveryFailed   ErrorCode = "DELIVERY_FAILED"
	CodeStorageFailed    ErrorCode = "STORAGE_FAILED"
)

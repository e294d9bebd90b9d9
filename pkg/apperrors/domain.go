package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики для ошибок границы диспетчеризации почты.
Только эта граница производит видимые пользователю ошибки: composer и
substitution — тотальные функции и не ошибаются.
*/

// ErrMissingFields - фабрика для ошибки валидации формы отправки (400).
// Relay при этом не вызывается и side effects отсутствуют.
func ErrMissingFields(details interface{}) *AppError {
	return New(CodeValidationFailed, "mail", "Missing required email fields", http.StatusBadRequest).
		WithDetails(details)
}

// ErrDeliveryFailed - фабрика для ошибки relay (500).
// Оригинальная ошибка сохраняется для серверного лога, но наружу уходит
// только общий текст.
func ErrDeliveryFailed(err error) *AppError {
	return Wrap(err, CodeDeliveryFailed, "mail", "Failed to send email", http.StatusInternalServerError)
}

// ErrStorageFailed - фабрика для ошибки временного хранилища.
// Не должна прерывать успешный ответ о доставке: вызывающий логирует её
// и продолжает.
func ErrStorageFailed(err error) *AppError {
	return Wrap(err, CodeStorageFailed, "storage", "Temporary upload storage failed", http.StatusInternalServerError)
}

// IsDelivery сообщает, является ли ошибка ошибкой доставки relay.
func IsDelivery(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == CodeDeliveryFailed
}

// IsValidation сообщает, является ли ошибка ошибкой валидации.
func IsValidation(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == CodeValidationFailed
}

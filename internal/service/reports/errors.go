package reports

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент для отчета не найден
	ErrClientNotFound = errors.New("reports service: client not found")

	// ErrWriteReport возвращается при ошибке записи файла отчета
	ErrWriteReport = errors.New("reports service: failed to write report file")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports service: internal error")
)

package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients.pg: client not found")

	// ErrNoContactChannel возвращается при попытке добавить клиента
	// без телефона и email
	ErrNoContactChannel = errors.New("clients.pg: telephone or email is required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("clients.pg: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("clients.pg: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("clients.pg: failed to scan row")
)

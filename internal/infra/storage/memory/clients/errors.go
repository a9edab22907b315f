package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients.repository: client not found")

	// ErrNoContactChannel возвращается при попытке добавить клиента
	// без телефона и email
	ErrNoContactChannel = errors.New("clients.repository: telephone or email is required")

	// ErrCorruptSnapshot возвращается, когда загруженный снапшот нарушает
	// структурные инварианты коллекции
	ErrCorruptSnapshot = errors.New("clients.repository: corrupt snapshot")
)

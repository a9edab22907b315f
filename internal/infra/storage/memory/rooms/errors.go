package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("rooms.repository: room not found")

	// ErrCorruptSnapshot возвращается, когда загруженный снапшот нарушает
	// структурные инварианты коллекции
	ErrCorruptSnapshot = errors.New("rooms.repository: corrupt snapshot")
)

package create_booking

import "errors"

var (
	// ErrNoRoomAvailable возвращается, когда ни одна комната не удовлетворяет
	// запрошенным ограничениям; журнал бронирований при этом не меняется
	ErrNoRoomAvailable = errors.New("create_booking: no room available for the given parameters")

	// ErrClientNotFound возвращается, когда указанный клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные заявки
// Значения приходят уже распарсенными: usecase не занимается разбором текста
func validateRequest(req *Request) error {
	if req.Profile.Computers < 0 {
		return fmt.Errorf("%w: computers must be 0 or more", ErrInvalidInput)
	}

	if req.Profile.BreakoutSeats < 0 {
		return fmt.Errorf("%w: breakoutSeats must be 0 or more", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Hours < domain.MinBookingHours {
		return fmt.Errorf("%w: duration must be at least %d hour", ErrInvalidInput, domain.MinBookingHours)
	}

	// Бронирование не выходит за пределы суток
	start, err := req.StartTime.TotalMinutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if start+req.Hours*60 > domain.MaxBookingHours*60 {
		return fmt.Errorf("%w: booking must end within the same day", ErrInvalidInput)
	}

	return validateClientReference(req)
}

// validateClientReference проверяет, что клиент задан ровно одним способом
func validateClientReference(req *Request) error {
	if req.ClientID == nil && req.Client == nil {
		return fmt.Errorf("%w: either clientId or client details are required", ErrInvalidInput)
	}

	if req.ClientID != nil && req.Client != nil {
		return fmt.Errorf("%w: clientId and client details are mutually exclusive", ErrInvalidInput)
	}

	if req.Client != nil {
		if req.Client.FirstName == "" {
			return fmt.Errorf("%w: client first name cannot be blank", ErrInvalidInput)
		}
		if req.Client.LastName == "" {
			return fmt.Errorf("%w: client last name cannot be blank", ErrInvalidInput)
		}
		c := domain.Client{Telephone: req.Client.Telephone, Email: req.Client.Email}
		if !c.HasContactChannel() {
			return fmt.Errorf("%w: client telephone or email is required", ErrInvalidInput)
		}
	}

	return nil
}

package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// NewClientRequest данные нового клиента внутри заявки на бронирование
type NewClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Telephone *string `json:"telephone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// CreateBookingRequest HTTP request model
// Клиент задается либо clientId, либо client — ровно одним из двух способов
type CreateBookingRequest struct {
	Computers     int               `json:"computers"`
	BreakoutSeats int               `json:"breakoutSeats"`
	Printer       bool              `json:"printer"`
	Smartboard    bool              `json:"smartboard"`
	BookingDate   string            `json:"bookingDate"` // "2024-01-10"
	StartTime     string            `json:"startTime"`   // "09:00"
	Hours         int               `json:"hours"`
	ClientID      *int64            `json:"clientId,omitempty"`
	Client        *NewClientRequest `json:"client,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID     string `json:"bookingId"`
	RoomNumber    int    `json:"roomNumber"`
	ClientID      int64  `json:"clientId"`
	ClientName    string `json:"clientName"`
	BookingDate   string `json:"bookingDate"`
	StartTime     string `json:"startTime"`
	Hours         int    `json:"hours"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		Profile: domain.ResourceProfile{
			Computers:     r.Computers,
			BreakoutSeats: r.BreakoutSeats,
			HasPrinter:    r.Printer,
			HasSmartboard: r.Smartboard,
		},
		Date:      bookingDate,
		StartTime: startTime,
		Hours:     r.Hours,
		ClientID:  r.ClientID,
	}

	if r.Client != nil {
		req.Client = &createBooking.NewClient{
			FirstName: r.Client.FirstName,
			LastName:  r.Client.LastName,
			Telephone: r.Client.Telephone,
			Email:     r.Client.Email,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:   resp.BookingID,
		RoomNumber:  resp.RoomNumber,
		ClientID:    resp.Client.ID,
		ClientName:  resp.Client.FullName(),
		BookingDate: resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Hours:       resp.DurationHours,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

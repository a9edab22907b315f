package add_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные клиента"
)

// AddClientRequest HTTP request model
// Хотя бы один из каналов связи (telephone, email) обязателен
type AddClientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Telephone *string `json:"telephone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// ClientResponse HTTP response model
// created=false означает, что клиент с таким каналом связи уже существует
// и возвращена существующая запись
type ClientResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Telephone *string `json:"telephone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Created   bool    `json:"created"`
}

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, created, err := h.service.AddClient(r.Context(), domain.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Telephone: req.Telephone,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, clients.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /clients - Failed to add client: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}

	handlers.RespondJSON(w, status, &ClientResponse{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Telephone: client.Telephone,
		Email:     client.Email,
		Created:   created,
	})
}

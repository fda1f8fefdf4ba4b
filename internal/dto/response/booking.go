package response

import (
	"room-booking/internal/data/entity"
	"room-booking/internal/dto/request"
)

type RoomResponse struct {
	ID          entity.RoomID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	PriceLabel  string        `json:"price_label"`
	Amenities   []string      `json:"amenities"`
}

type FormResponse struct {
	Visible bool                 `json:"visible"`
	Draft   request.BookingDraft `json:"draft"`
}

type DialogResponse struct {
	Open  bool   `json:"open"`
	State string `json:"state"`
	Text  string `json:"text,omitempty"`
}

type AlertResponse struct {
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}

// ScreenResponse is everything a shell needs to render the booking screen.
type ScreenResponse struct {
	Phase        string          `json:"phase"`
	Rooms        []RoomResponse  `json:"rooms"`
	SelectedRoom *RoomResponse   `json:"selected_room,omitempty"`
	Form         FormResponse    `json:"form"`
	Dialog       DialogResponse  `json:"dialog"`
	Alerts       []AlertResponse `json:"alerts"`
}

type BookingAckResponse struct {
	Sent   bool           `json:"sent"`
	Screen ScreenResponse `json:"screen"`
}

// Helper converters
func RoomToResponse(room entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		Price:       room.Price,
		PriceLabel:  room.PriceLabel(),
		Amenities:   room.Amenities(),
	}
}

// CatalogResponse is the body of GET /admin/meetingRooms.
type CatalogResponse struct {
	Data []entity.Room `json:"data"`
}

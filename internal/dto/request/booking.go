package request

import "room-booking/internal/data/entity"

// Draft fields, as named by the form.
const (
	DraftFieldName    = "name"
	DraftFieldEmail   = "email"
	DraftFieldPhone   = "phone"
	DraftFieldCompany = "company"
)

// BookingDraft is the contact form. Only presence is checked; email and phone
// formats are left to the server.
type BookingDraft struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Company string `json:"company"`
}

// UpdateDraftFieldRequest is one keystroke-level edit of the form.
type UpdateDraftFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=name email phone company"`
	Value string `json:"value"`
}

// CreateBookingRequest is the body of POST /admin/createBookingWithPayment.
type CreateBookingRequest struct {
	MeetingRoomID entity.RoomID `json:"meetingRoomId"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Company       string        `json:"company"`
	CenterID      string        `json:"centerId"`
}

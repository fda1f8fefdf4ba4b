package adaptor

import (
	"room-booking/internal/dto/response"
	"room-booking/internal/usecase"
)

const (
	dialogPendingText = "Processing payment..."
	dialogSettledText = "Payment Link Sent!"
)

// loginRedirect is the navigation hint sent when there is no stored login.
var loginRedirect = map[string]string{"redirect": "/login"}

// toScreenResponse renders a snapshot plus the alerts raised since the last read.
func toScreenResponse(snap usecase.Snapshot, alerts []usecase.Alert) response.ScreenResponse {
	screen := response.ScreenResponse{
		Phase:  string(snap.Phase),
		Rooms:  make([]response.RoomResponse, 0, len(snap.Rooms)),
		Alerts: make([]response.AlertResponse, 0, len(alerts)),
		Form: response.FormResponse{
			Visible: snap.Phase.FormVisible(),
			Draft:   snap.Draft,
		},
	}

	for _, room := range snap.Rooms {
		screen.Rooms = append(screen.Rooms, response.RoomToResponse(room))
	}
	if snap.SelectedRoom != nil {
		selected := response.RoomToResponse(*snap.SelectedRoom)
		screen.SelectedRoom = &selected
	}

	dialog := snap.Phase.Dialog()
	screen.Dialog = response.DialogResponse{
		Open:  dialog != usecase.DialogNone,
		State: string(dialog),
	}
	switch dialog {
	case usecase.DialogPending:
		screen.Dialog.Text = dialogPendingText
	case usecase.DialogSettled:
		screen.Dialog.Text = dialogSettledText
	}

	for _, alert := range alerts {
		screen.Alerts = append(screen.Alerts, response.AlertResponse{Title: alert.Title, Message: alert.Message})
	}
	return screen
}

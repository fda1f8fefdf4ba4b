package adaptor

import (
	"testing"

	"room-booking/internal/data/entity"
	"room-booking/internal/usecase"
)

func TestToScreenResponse(t *testing.T) {
	room := entity.Room{ID: entity.NewNumericRoomID(2), Name: "Diwan", Price: 220}

	tests := []struct {
		name        string
		phase       usecase.Phase
		formVisible bool
		dialogOpen  bool
		dialogText  string
	}{
		{name: "browsing", phase: usecase.PhaseBrowsing},
		{name: "form", phase: usecase.PhaseFormOpen, formVisible: true},
		{name: "submitting", phase: usecase.PhaseSubmitting, dialogOpen: true, dialogText: dialogPendingText},
		{name: "confirming", phase: usecase.PhaseConfirming, dialogOpen: true, dialogText: dialogSettledText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := toScreenResponse(usecase.Snapshot{
				Phase:        tt.phase,
				Rooms:        []entity.Room{room},
				SelectedRoom: &room,
			}, []usecase.Alert{usecase.AlertBookingFailed})

			if screen.Form.Visible != tt.formVisible {
				t.Fatalf("form visible = %v", screen.Form.Visible)
			}
			if screen.Dialog.Open != tt.dialogOpen || screen.Dialog.Text != tt.dialogText {
				t.Fatalf("unexpected dialog %+v", screen.Dialog)
			}
			if screen.Form.Visible && screen.Dialog.Open {
				t.Fatal("form and dialog must never show together")
			}
			if screen.Rooms[0].PriceLabel != "SAR 220" || len(screen.Rooms[0].Amenities) != 4 {
				t.Fatalf("unexpected room card %+v", screen.Rooms[0])
			}
			if len(screen.Alerts) != 1 || screen.Alerts[0].Title != "Booking failed" {
				t.Fatalf("unexpected alerts %+v", screen.Alerts)
			}
		})
	}
}

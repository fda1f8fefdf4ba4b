package usecase

import (
	"context"
	"fmt"
	"sync"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

// Phase is the single state of the booking screen.
type Phase string

const (
	PhaseBootstrapping Phase = "bootstrapping"
	PhaseLoading       Phase = "loading"
	PhaseEmpty         Phase = "empty"
	PhaseBrowsing      Phase = "browsing"
	PhaseFormOpen      Phase = "form_open"
	PhaseSubmitting    Phase = "submitting"
	PhaseConfirming    Phase = "confirming"
)

type DialogState string

const (
	DialogNone    DialogState = "none"
	DialogPending DialogState = "pending"
	DialogSettled DialogState = "settled"
)

// Dialog derives the confirmation dialog from the phase.
func (p Phase) Dialog() DialogState {
	switch p {
	case PhaseSubmitting:
		return DialogPending
	case PhaseConfirming:
		return DialogSettled
	default:
		return DialogNone
	}
}

func (p Phase) FormVisible() bool {
	return p == PhaseFormOpen
}

// Snapshot is a copy of the screen state.
type Snapshot struct {
	Phase        Phase
	Rooms        []entity.Room
	SelectedRoom *entity.Room
	Draft        request.BookingDraft
}

// Ack is all a successful submission tells the screen.
type Ack struct {
	Sent bool
}

// BookingFlow drives one mounted booking screen. Its session context is fixed
// at construction. State is guarded by mu, which is never held across a
// remote call; a call once started is not cancelled by its caller.
type BookingFlow struct {
	session  entity.SessionContext
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
	alerts   AlertSink
	clock    Clock
	policy   ConfirmPolicy
	log      *zap.Logger

	mu       sync.Mutex
	phase    Phase
	catalog  []entity.Room
	selected *entity.Room
	draft    request.BookingDraft
}

func NewBookingFlow(
	session entity.SessionContext,
	repo *repository.Repository,
	alerts AlertSink,
	clock Clock,
	policy ConfirmPolicy,
	log *zap.Logger,
) *BookingFlow {
	return &BookingFlow{
		session:  session,
		rooms:    repo.Room,
		bookings: repo.Booking,
		alerts:   alerts,
		clock:    clock,
		policy:   policy,
		log:      log.With(zap.String("service", "booking_flow"), zap.String("center_id", session.CenterID)),
		phase:    PhaseBootstrapping,
	}
}

// LoadCatalog fetches the room list. It is accepted right after mount, from
// the empty screen and while browsing. An empty catalog yields
// ErrEmptyCatalog; a failed call raises one alert and yields *TransportError.
// Both leave the screen in PhaseEmpty.
func (f *BookingFlow) LoadCatalog(ctx context.Context) ([]entity.Room, error) {
	return f.load(ctx, PhaseBootstrapping, PhaseEmpty, PhaseBrowsing)
}

// Retry reloads the catalog from the empty screen. A tap while a load is
// already running is rejected.
func (f *BookingFlow) Retry(ctx context.Context) ([]entity.Room, error) {
	return f.load(ctx, PhaseEmpty)
}

func (f *BookingFlow) load(ctx context.Context, from ...Phase) ([]entity.Room, error) {
	f.mu.Lock()
	if !f.in(from...) {
		phase := f.phase
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: load rooms while %s", ErrInvalidTransition, phase)
	}
	f.phase = PhaseLoading
	token := f.session.AccessToken
	f.mu.Unlock()

	f.log.Debug("Loading meeting rooms")
	rooms, err := f.rooms.List(context.WithoutCancel(ctx), token)

	f.mu.Lock()
	if err != nil {
		f.catalog = nil
		f.phase = PhaseEmpty
		f.mu.Unlock()

		te := newTransportError("load rooms", err)
		f.log.Warn("Meeting rooms failed to load", zap.Error(err), zap.Int("status", te.Status))
		if te.IsNetwork() {
			f.alerts.Raise(AlertRoomsUnreachable)
		} else {
			f.alerts.Raise(AlertRoomsFetchFailed)
		}
		return nil, te
	}

	f.catalog = rooms
	if len(rooms) == 0 {
		f.phase = PhaseEmpty
		f.mu.Unlock()
		f.log.Info("No meeting rooms available")
		return rooms, ErrEmptyCatalog
	}
	f.phase = PhaseBrowsing
	f.mu.Unlock()

	f.log.Info("Meeting rooms loaded", zap.Int("count", len(rooms)))
	return rooms, nil
}

// SelectRoom remembers the tapped room and opens the form.
func (f *BookingFlow) SelectRoom(roomID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseBrowsing {
		return fmt.Errorf("%w: select room while %s", ErrInvalidTransition, f.phase)
	}

	for _, room := range f.catalog {
		if room.ID.String() == roomID {
			selected := room
			f.selected = &selected
			f.phase = PhaseFormOpen
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
}

// UpdateDraftField stores one form edit as typed; nothing is validated here.
func (f *BookingFlow) UpdateDraftField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseFormOpen {
		return fmt.Errorf("%w: edit form while %s", ErrInvalidTransition, f.phase)
	}

	switch field {
	case request.DraftFieldName:
		f.draft.Name = value
	case request.DraftFieldEmail:
		f.draft.Email = value
	case request.DraftFieldPhone:
		f.draft.Phone = value
	case request.DraftFieldCompany:
		f.draft.Company = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// CancelForm hides the form. The draft is kept for the next room.
func (f *BookingFlow) CancelForm() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseFormOpen {
		return fmt.Errorf("%w: cancel form while %s", ErrInvalidTransition, f.phase)
	}
	f.phase = PhaseBrowsing
	return nil
}

// Submit validates the draft and sends the booking. The form closes and the
// dialog goes pending before the request is issued; it settles no earlier
// than policy.MinDisplay after that. A failed request closes the dialog and
// raises one alert instead.
func (f *BookingFlow) Submit(ctx context.Context) (Ack, error) {
	f.mu.Lock()
	if f.phase != PhaseFormOpen || f.selected == nil || f.selected.ID.IsZero() {
		phase := f.phase
		f.mu.Unlock()
		return Ack{}, fmt.Errorf("%w: submit while %s", ErrInvalidTransition, phase)
	}

	if errs := utils.ValidateStruct(f.draft); len(errs) > 0 {
		f.mu.Unlock()
		f.log.Debug("Booking form incomplete", zap.Any("errors", errs))
		f.alerts.Raise(AlertMissingInfo)
		return Ack{}, &ValidationError{Fields: errs}
	}

	req := request.CreateBookingRequest{
		MeetingRoomID: f.selected.ID,
		Name:          f.draft.Name,
		Email:         f.draft.Email,
		Phone:         f.draft.Phone,
		Company:       f.draft.Company,
		CenterID:      f.session.CenterID,
	}
	token := f.session.AccessToken
	f.phase = PhaseSubmitting
	f.mu.Unlock()

	floor := f.clock.After(f.policy.MinDisplay)
	err := f.bookings.Create(context.WithoutCancel(ctx), token, &req)
	<-floor

	f.mu.Lock()
	if err != nil {
		f.phase = PhaseBrowsing
		f.mu.Unlock()

		te := newTransportError("create booking", err)
		f.log.Warn("Booking request failed",
			zap.Error(err),
			zap.Int("status", te.Status),
			zap.String("meeting_room_id", req.MeetingRoomID.String()),
		)
		if te.IsNetwork() {
			f.alerts.Raise(AlertBookingUnreachable)
		} else {
			f.alerts.Raise(AlertBookingFailed)
		}
		return Ack{}, te
	}
	f.phase = PhaseConfirming
	f.mu.Unlock()

	f.log.Info("Booking sent, payment link on its way",
		zap.String("meeting_room_id", req.MeetingRoomID.String()),
	)
	return Ack{Sent: true}, nil
}

// DismissDialog closes the success dialog and returns to the room list.
func (f *BookingFlow) DismissDialog() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseConfirming {
		return fmt.Errorf("%w: dismiss dialog while %s", ErrInvalidTransition, f.phase)
	}
	f.phase = PhaseBrowsing
	return nil
}

func (f *BookingFlow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		Phase: f.phase,
		Rooms: append([]entity.Room(nil), f.catalog...),
		Draft: f.draft,
	}
	if f.selected != nil {
		selected := *f.selected
		snap.SelectedRoom = &selected
	}
	return snap
}

// in reports whether the current phase is one of phases. mu must be held.
func (f *BookingFlow) in(phases ...Phase) bool {
	for _, p := range phases {
		if f.phase == p {
			return true
		}
	}
	return false
}

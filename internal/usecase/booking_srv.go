package usecase

import (
	"context"
	"errors"
	"sync"

	"room-booking/internal/data/repository"

	"go.uber.org/zap"
)

// BookingService hosts the one booking screen of this front-end. Mount
// replaces any previous screen, which resets the draft and the selection.
type BookingService interface {
	Mount(ctx context.Context) (Snapshot, error)
	Unmount()
	Retry(ctx context.Context) (Snapshot, error)
	SelectRoom(ctx context.Context, roomID string) (Snapshot, error)
	UpdateDraftField(ctx context.Context, field, value string) (Snapshot, error)
	CancelForm(ctx context.Context) (Snapshot, error)
	Submit(ctx context.Context) (Ack, Snapshot, error)
	DismissDialog(ctx context.Context) (Snapshot, error)
	Snapshot(ctx context.Context) Snapshot
	DrainAlerts() []Alert
}

type bookingService struct {
	repo     *repository.Repository
	sessions SessionService
	alerts   *AlertQueue
	clock    Clock
	policy   ConfirmPolicy
	log      *zap.Logger

	mu   sync.Mutex
	flow *BookingFlow
}

func NewBookingService(
	repo *repository.Repository,
	sessions SessionService,
	alerts *AlertQueue,
	clock Clock,
	policy ConfirmPolicy,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		sessions: sessions,
		alerts:   alerts,
		clock:    clock,
		policy:   policy,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Mount(ctx context.Context) (Snapshot, error) {
	session, ok, err := s.sessions.Bootstrap(ctx)
	if err != nil {
		return Snapshot{Phase: PhaseBootstrapping}, err
	}
	if !ok {
		s.Unmount()
		return Snapshot{Phase: PhaseBootstrapping}, ErrNoSession
	}

	flow := NewBookingFlow(session, s.repo, s.alerts, s.clock, s.policy, s.log)
	s.mu.Lock()
	s.flow = flow
	s.mu.Unlock()

	s.log.Info("Booking screen mounted", zap.String("center_id", session.CenterID))

	// Empty and failed catalogs are screen states, not mount failures.
	if _, err := flow.LoadCatalog(ctx); err != nil && !isSettledLoad(err) {
		return flow.Snapshot(), err
	}
	return flow.Snapshot(), nil
}

func (s *bookingService) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = nil
}

func (s *bookingService) Retry(ctx context.Context) (Snapshot, error) {
	flow, err := s.current()
	if err != nil {
		return s.Snapshot(ctx), err
	}
	if _, err := flow.Retry(ctx); err != nil && !isSettledLoad(err) {
		return flow.Snapshot(), err
	}
	return flow.Snapshot(), nil
}

func (s *bookingService) SelectRoom(ctx context.Context, roomID string) (Snapshot, error) {
	return s.apply(ctx, func(f *BookingFlow) error { return f.SelectRoom(roomID) })
}

func (s *bookingService) UpdateDraftField(ctx context.Context, field, value string) (Snapshot, error) {
	return s.apply(ctx, func(f *BookingFlow) error { return f.UpdateDraftField(field, value) })
}

func (s *bookingService) CancelForm(ctx context.Context) (Snapshot, error) {
	return s.apply(ctx, func(f *BookingFlow) error { return f.CancelForm() })
}

func (s *bookingService) Submit(ctx context.Context) (Ack, Snapshot, error) {
	flow, err := s.current()
	if err != nil {
		return Ack{}, s.Snapshot(ctx), err
	}
	ack, err := flow.Submit(ctx)
	return ack, flow.Snapshot(), err
}

func (s *bookingService) DismissDialog(ctx context.Context) (Snapshot, error) {
	return s.apply(ctx, func(f *BookingFlow) error { return f.DismissDialog() })
}

func (s *bookingService) Snapshot(ctx context.Context) Snapshot {
	flow, err := s.current()
	if err != nil {
		return Snapshot{Phase: PhaseBootstrapping}
	}
	return flow.Snapshot()
}

func (s *bookingService) DrainAlerts() []Alert {
	return s.alerts.Drain()
}

func (s *bookingService) apply(ctx context.Context, op func(*BookingFlow) error) (Snapshot, error) {
	flow, err := s.current()
	if err != nil {
		return s.Snapshot(ctx), err
	}
	err = op(flow)
	return flow.Snapshot(), err
}

func (s *bookingService) current() (*BookingFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow == nil {
		return nil, ErrNotMounted
	}
	return s.flow, nil
}

// isSettledLoad reports load outcomes that already resolved to the empty
// screen (with an alert where one is due).
func isSettledLoad(err error) bool {
	var te *TransportError
	return errors.Is(err, ErrEmptyCatalog) || errors.As(err, &te)
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/apiclient"

	"go.uber.org/zap"
)

var errNetwork = errors.New("dial tcp: connection refused")

type fakeRooms struct {
	mu      sync.Mutex
	calls   int
	rooms   []entity.Room
	err     error
	release chan struct{}
	started chan struct{}
}

func (f *fakeRooms) List(ctx context.Context, accessToken string) ([]entity.Room, error) {
	f.mu.Lock()
	f.calls++
	rooms, err, release, started := f.rooms, f.err, f.release, f.started
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return rooms, err
}

func (f *fakeRooms) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeBookings struct {
	mu      sync.Mutex
	reqs    []request.CreateBookingRequest
	tokens  []string
	err     error
	release chan struct{}
	started chan struct{}
}

func (f *fakeBookings) Create(ctx context.Context, accessToken string, req *request.CreateBookingRequest) error {
	f.mu.Lock()
	f.reqs = append(f.reqs, *req)
	f.tokens = append(f.tokens, accessToken)
	err, release, started := f.err, f.release, f.started
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return err
}

func (f *fakeBookings) Requests() []request.CreateBookingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request.CreateBookingRequest(nil), f.reqs...)
}

type fakeAuth struct {
	got *request.RemoteLoginRequest
	res *response.RemoteLoginResponse
	err error
}

func (f *fakeAuth) Login(ctx context.Context, req *request.RemoteLoginRequest) (*response.RemoteLoginResponse, error) {
	f.got = req
	return f.res, f.err
}

type memSession struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemSession(kv ...string) *memSession {
	s := &memSession{values: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		s.values[kv[i]] = kv[i+1]
	}
	return s
}

func (s *memSession) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memSession) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memSession) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

func (s *memSession) Close() error { return nil }

// failingSession fails every read, like a store sealed under another secret.
type failingSession struct {
	err error
}

func (f failingSession) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.err
}
func (f failingSession) Set(ctx context.Context, key, value string) error { return f.err }

func (f failingSession) Delete(ctx context.Context, keys ...string) error { return f.err }

func (f failingSession) Close() error { return nil }

// recordingSink collects raised alerts.
type recordingSink struct {
	mu     sync.Mutex
	alerts []Alert
}

func (r *recordingSink) Raise(alert Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
}

func (r *recordingSink) All() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Alert(nil), r.alerts...)
}

// manualClock hands out timers that only fire when the test says so.
type manualClock struct {
	mu        sync.Mutex
	pending   []chan time.Time
	durations []time.Duration
	armed     chan time.Duration
}

func newManualClock() *manualClock {
	return &manualClock{armed: make(chan time.Duration, 16)}
}

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.mu.Lock()
	c.pending = append(c.pending, ch)
	c.durations = append(c.durations, d)
	c.mu.Unlock()
	c.armed <- d
	return ch
}

func (c *manualClock) Fire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.pending {
		ch <- time.Now()
	}
	c.pending = nil
}

// immediateClock fires every timer at once.
type immediateClock struct{}

func (immediateClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func numericRoom(id int64, name string, price float64) entity.Room {
	return entity.Room{ID: entity.NewNumericRoomID(id), Name: name, Price: price}
}

type flowFixture struct {
	rooms    *fakeRooms
	bookings *fakeBookings
	auth     *fakeAuth
	session  *memSession
	sink     *recordingSink
	clock    *manualClock
	repo     *repository.Repository
}

func newFixture() *flowFixture {
	fx := &flowFixture{
		rooms:    &fakeRooms{},
		bookings: &fakeBookings{},
		auth:     &fakeAuth{},
		session:  newMemSession(),
		sink:     &recordingSink{},
		clock:    newManualClock(),
	}
	fx.repo = &repository.Repository{
		Session: fx.session,
		Room:    fx.rooms,
		Booking: fx.bookings,
		Auth:    fx.auth,
	}
	return fx
}

func (fx *flowFixture) flow(session entity.SessionContext) *BookingFlow {
	return NewBookingFlow(session, fx.repo, fx.sink, fx.clock, ConfirmPolicy{MinDisplay: DefaultMinDisplay}, zap.NewNop())
}

func statusErr(code int) error {
	return &apiclient.StatusError{Code: code, Body: []byte(`{"error":"boom"}`)}
}

func waitPhase(t *testing.T, f *BookingFlow, want Phase) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.Snapshot().Phase == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("phase never reached %s, still %s", want, f.Snapshot().Phase)
}

func waitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

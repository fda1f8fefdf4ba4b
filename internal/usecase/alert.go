package usecase

import (
	"sync"

	"go.uber.org/zap"
)

// Alert is a one-shot blocking message for the user.
type Alert struct {
	Title   string
	Message string
}

// Alerts raised by the booking screen.
var (
	AlertRoomsFetchFailed   = Alert{Title: "Error", Message: "Failed to fetch rooms"}
	AlertRoomsUnreachable   = Alert{Title: "Error", Message: "Unable to load rooms"}
	AlertMissingInfo        = Alert{Title: "Missing info", Message: "Please fill in all required fields."}
	AlertBookingFailed      = Alert{Title: "Booking failed"}
	AlertBookingUnreachable = Alert{Title: "Error", Message: "Failed to create booking"}
)

type AlertSink interface {
	Raise(alert Alert)
}

// AlertQueue buffers alerts until the shell reads them.
type AlertQueue struct {
	mu     sync.Mutex
	alerts []Alert
	log    *zap.Logger
}

func NewAlertQueue(log *zap.Logger) *AlertQueue {
	return &AlertQueue{log: log.With(zap.String("component", "alerts"))}
}

func (q *AlertQueue) Raise(alert Alert) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.log.Info("Alert raised", zap.String("title", alert.Title), zap.String("message", alert.Message))
	q.alerts = append(q.alerts, alert)
}

// Drain returns and forgets every pending alert.
func (q *AlertQueue) Drain() []Alert {
	q.mu.Lock()
	defer q.mu.Unlock()

	alerts := q.alerts
	q.alerts = nil
	return alerts
}

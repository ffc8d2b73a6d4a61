package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/ports"
)

const (
	// changeQueueSize bounds the number of committed changes waiting for
	// fan-out. Publishers enqueue and return; the worker drains the queue.
	changeQueueSize = 256

	// subscriberBufferSize bounds each live subscription channel. A subscriber
	// that stops reading loses live pushes but keeps its durable inbox.
	subscriberBufferSize = 16
)

// Hub fans committed parcel changes out to the actors they are relevant to.
// It implements ports.ChangePublisher.
//
// A single worker goroutine processes changes in publish order, which preserves
// per-parcel ordering: command handlers publish after commit, and mutations on
// one parcel are serialized by the status-guarded update.
type Hub struct {
	actors ports.ActorRepository
	inbox  Repository
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}

	queue     chan ports.ParcelChange
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewHub creates a hub and starts its dispatch worker.
func NewHub(actors ports.ActorRepository, inbox Repository, logger *slog.Logger) *Hub {
	h := &Hub{
		actors:      actors,
		inbox:       inbox,
		logger:      logger.With("component", "notification_hub"),
		subscribers: make(map[string]map[*Subscription]struct{}),
		queue:       make(chan ports.ParcelChange, changeQueueSize),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	go h.run()
	return h
}

// Publish enqueues a committed change for asynchronous fan-out. It never does
// notification work on the mutating caller's goroutine.
func (h *Hub) Publish(change ports.ParcelChange) {
	select {
	case h.queue <- change:
	case <-h.done:
		h.logger.Warn("change dropped, hub is closed", "parcel_id", change.ParcelID.String())
	}
}

// Subscribe opens a live subscription for an actor. The subscription is
// long-lived and must be closed by the subscriber; notifications emitted while
// unsubscribed remain in the durable inbox.
func (h *Hub) Subscribe(actorID kernel.UUID) *Subscription {
	sub := &Subscription{
		actorID: actorID,
		ch:      make(chan *Notification, subscriberBufferSize),
		hub:     h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	key := actorID.String()
	if h.subscribers[key] == nil {
		h.subscribers[key] = make(map[*Subscription]struct{})
	}
	h.subscribers[key][sub] = struct{}{}
	return sub
}

// Inbox returns an actor's queued notifications, newest first.
func (h *Hub) Inbox(ctx context.Context, actorID kernel.UUID, unreadOnly bool) ([]*Notification, error) {
	return h.inbox.ListByActor(ctx, actorID, unreadOnly)
}

// MarkRead flags an inbox notification as read.
func (h *Hub) MarkRead(ctx context.Context, id kernel.UUID) error {
	return h.inbox.MarkRead(ctx, id)
}

// Close stops the dispatch worker and closes all live subscriptions.
// Pending queued changes are drained before shutdown completes.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		<-h.stopped

		h.mu.Lock()
		defer h.mu.Unlock()
		for _, subs := range h.subscribers {
			for sub := range subs {
				close(sub.ch)
			}
		}
		h.subscribers = make(map[string]map[*Subscription]struct{})
	})
}

func (h *Hub) run() {
	defer close(h.stopped)
	for {
		select {
		case change := <-h.queue:
			h.dispatch(context.Background(), change)
		case <-h.done:
			for {
				select {
				case change := <-h.queue:
					h.dispatch(context.Background(), change)
				default:
					return
				}
			}
		}
	}
}

// dispatch computes the relevance set for one change and delivers a
// notification to every relevant actor: durably into the inbox, and over the
// live channel when the actor is subscribed. Inbox failures are logged and
// never fail the originating transition.
func (h *Hub) dispatch(ctx context.Context, change ports.ParcelChange) {
	now := time.Now().UTC()
	for _, actorID := range h.relevanceSet(ctx, change) {
		n := newNotification(actorID, change, now)
		if change.Kind == ports.ChangeDriverAssigned &&
			(change.DriverID == nil || !change.DriverID.IsEqual(actorID)) {
			n.Message = "Package #" + change.TrackingCode + " has been assigned to a driver"
		}

		if err := h.inbox.Add(ctx, n); err != nil {
			h.logger.ErrorContext(ctx, "failed to queue notification",
				"actor_id", actorID.String(), "parcel_id", change.ParcelID.String(), "error", err)
		}
		h.push(actorID, n)
	}
}

// relevanceSet resolves the actors entitled to the change: the sender, the
// assigned driver, the owning company's active admins, and all super admins.
func (h *Hub) relevanceSet(ctx context.Context, change ports.ParcelChange) []kernel.UUID {
	seen := map[string]struct{}{}
	var set []kernel.UUID

	add := func(id kernel.UUID) {
		if _, ok := seen[id.String()]; ok {
			return
		}
		seen[id.String()] = struct{}{}
		set = append(set, id)
	}

	add(change.SenderID)
	if change.DriverID != nil {
		add(*change.DriverID)
	}

	if change.CompanyID != nil {
		admins, err := h.actors.ListAdminsByCompany(ctx, *change.CompanyID)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to resolve company admins",
				"company_id", change.CompanyID.String(), "error", err)
		}
		for _, admin := range admins {
			add(admin.ID())
		}
	}

	superAdmins, err := h.actors.ListSuperAdmins(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve super admins", "error", err)
	}
	for _, sa := range superAdmins {
		add(sa.ID())
	}

	return set
}

func (h *Hub) push(actorID kernel.UUID, n *Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers[actorID.String()] {
		select {
		case sub.ch <- n:
		default:
			// Slow subscriber: skip the live push, the inbox still has it.
		}
	}
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := sub.actorID.String()
	if subs, ok := h.subscribers[key]; ok {
		if _, registered := subs[sub]; registered {
			delete(subs, sub)
			close(sub.ch)
			if len(subs) == 0 {
				delete(h.subscribers, key)
			}
		}
	}
}

// Subscription is one actor's live notification stream.
type Subscription struct {
	actorID   kernel.UUID
	ch        chan *Notification
	hub       *Hub
	closeOnce sync.Once
}

// Events returns the stream channel. It is closed when the subscription or the
// hub is closed.
func (s *Subscription) Events() <-chan *Notification {
	return s.ch
}

// Close ends the subscription. Queued-but-undelivered notifications remain in
// the actor's inbox.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.unsubscribe(s)
	})
}

package client

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lumenledger/backend/internal/sharedprops"
)

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// DefaultNotificationTimeout is how long a non-persistent notification
// stays visible when no timeout is given.
const DefaultNotificationTimeout = 5 * time.Second

// Notification is one ephemeral UI message. Persistent notifications
// stay until they are removed explicitly.
type Notification struct {
	ID         string
	Type       NotificationType
	Message    string
	Timeout    time.Duration
	Persistent bool
	CreatedAt  time.Time
}

// AppStore holds the cross-cutting UI state: the notification list,
// the field-keyed validation error bag, and the shared loading flag.
// Entity stores funnel all their failures through here, there is no
// separate failure channel per entity type.
type AppStore struct {
	mu            sync.Mutex
	loading       bool
	notifications []Notification
	timers        map[string]*time.Timer
	errors        map[string][]string

	// Snapshot whose flash slots were already bridged. The bridge
	// runs at most once per navigation.
	flashProcessed *sharedprops.Snapshot
}

func NewAppStore() *AppStore {
	return &AppStore{
		timers: make(map[string]*time.Timer),
		errors: make(map[string][]string),
	}
}

func (s *AppStore) SetLoading(value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = value
}

func (s *AppStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// AddNotification adds a notification and returns its generated ID.
//
// ID and CreatedAt are always set here; a zero Timeout gets the
// default. Non-persistent notifications remove themselves after their
// timeout, the timer can only be cancelled by removing the
// notification.
func (s *AppStore) AddNotification(notification Notification) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification.ID = uuid.NewString()
	notification.CreatedAt = time.Now()
	if notification.Timeout == 0 {
		notification.Timeout = DefaultNotificationTimeout
	}

	s.notifications = append(s.notifications, notification)

	if !notification.Persistent && notification.Timeout > 0 {
		id := notification.ID
		s.timers[id] = time.AfterFunc(notification.Timeout, func() {
			s.RemoveNotification(id)
		})
	}

	return notification.ID
}

// RemoveNotification removes a notification. Removing an ID that is
// already gone is a no-op.
func (s *AppStore) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	for i, notification := range s.notifications {
		if notification.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Notifications returns a copy of the current notification list.
func (s *AppStore) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]Notification, len(s.notifications))
	copy(notifications, s.notifications)

	return notifications
}

func (s *AppStore) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.notifications = nil
}

// SetErrors replaces the validation error bag.
func (s *AppStore) SetErrors(errors map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = make(map[string][]string, len(errors))
	for field, messages := range errors {
		s.errors[field] = append([]string(nil), messages...)
	}
}

func (s *AppStore) AddError(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors[field] = append(s.errors[field], message)
}

func (s *AppStore) RemoveError(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.errors, field)
}

func (s *AppStore) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = make(map[string][]string)
}

// Errors returns a copy of the validation error bag.
func (s *AppStore) Errors() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	errors := make(map[string][]string, len(s.errors))
	for field, messages := range s.errors {
		errors[field] = append([]string(nil), messages...)
	}

	return errors
}

// ProcessFlash bridges the snapshot's flash slots into notifications.
//
// The mapping is fixed: success and info and warning map onto their
// notification type, error maps onto a persistent error notification,
// the generic message slot maps onto info. Empty slots produce
// nothing, and a snapshot is bridged at most once.
func (s *AppStore) ProcessFlash(snapshot *sharedprops.Snapshot) {
	s.mu.Lock()
	if s.flashProcessed == snapshot {
		s.mu.Unlock()
		return
	}
	s.flashProcessed = snapshot
	s.mu.Unlock()

	flash := snapshot.Flash

	if flash.Success != nil {
		s.AddNotification(Notification{Type: NotificationSuccess, Message: *flash.Success})
	}

	if flash.Error != nil {
		s.AddNotification(Notification{Type: NotificationError, Message: *flash.Error, Persistent: true})
	}

	if flash.Info != nil {
		s.AddNotification(Notification{Type: NotificationInfo, Message: *flash.Info})
	}

	if flash.Warning != nil {
		s.AddNotification(Notification{Type: NotificationWarning, Message: *flash.Warning})
	}

	if flash.Message != nil {
		s.AddNotification(Notification{Type: NotificationInfo, Message: *flash.Message})
	}
}

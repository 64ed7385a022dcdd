package service

import (
	"fmt"
	"time"
)

// Actor identifies the staff member behind a write, for audit fields and change events.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SystemActor is used when no staff member is attached (seeding, CLI tools).
var SystemActor = Actor{ID: "system", Name: "system"}

// Clock returns the current time. Services stamp records through it.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// Notifier receives record change events; ws.Hub fans them out to admin clients.
type Notifier interface {
	Publish(payload interface{})
}

type noopNotifier struct{}

func (noopNotifier) Publish(interface{}) {}

// Change actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordChange is broadcast after every successful write.
type RecordChange struct {
	Type    string `json:"type"`
	Entity  string `json:"entity"`
	Action  string `json:"action"`
	ID      string `json:"id"`
	Label   string `json:"label"`
	User    Actor  `json:"user"`
	Message string `json:"message"`
}

func newRecordChange(entity, action, id string, label fmt.Stringer, actor Actor) RecordChange {
	return RecordChange{
		Type:    "record_change",
		Entity:  entity,
		Action:  action,
		ID:      id,
		Label:   label.String(),
		User:    actor,
		Message: fmt.Sprintf("%s %s %s '%s'", actor.Name, action, entity, label),
	}
}

// base carries what every record service shares.
type base struct {
	now      Clock
	notifier Notifier
}

func newBase(clock Clock, notifier Notifier) base {
	if clock == nil {
		clock = utcNow
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return base{now: clock, notifier: notifier}
}

func (b base) publish(entity, action, id string, label fmt.Stringer, actor Actor) {
	b.notifier.Publish(newRecordChange(entity, action, id, label, actor))
}

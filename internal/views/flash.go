package views

import (
	"github.com/lumenledger/backend/internal/sharedprops"
)

// Message is one flash message together with the slot it came from.
type Message struct {
	Type    string
	Message string
}

// Flash exposes the flash slots of a snapshot.
type Flash struct {
	snapshot *sharedprops.Snapshot
}

func NewFlash(snapshot *sharedprops.Snapshot) Flash {
	return Flash{snapshot: snapshot}
}

func value(slot *string) (string, bool) {
	if slot == nil {
		return "", false
	}

	return *slot, true
}

func (v Flash) Message() (string, bool) { return value(v.snapshot.Flash.Message) }
func (v Flash) Success() (string, bool) { return value(v.snapshot.Flash.Success) }
func (v Flash) Error() (string, bool)   { return value(v.snapshot.Flash.Error) }
func (v Flash) Info() (string, bool)    { return value(v.snapshot.Flash.Info) }
func (v Flash) Warning() (string, bool) { return value(v.snapshot.Flash.Warning) }

// HasMessages reports whether any slot carries a message.
func (v Flash) HasMessages() bool {
	return len(v.All()) > 0
}

// All returns the set messages in a fixed order.
func (v Flash) All() []Message {
	flash := v.snapshot.Flash
	var messages []Message

	for _, slot := range []struct {
		name  string
		value *string
	}{
		{"success", flash.Success},
		{"error", flash.Error},
		{"info", flash.Info},
		{"warning", flash.Warning},
		{"message", flash.Message},
	} {
		if slot.value != nil {
			messages = append(messages, Message{Type: slot.name, Message: *slot.value})
		}
	}

	return messages
}

package notify

import (
	"context"
	"errors"
)

// ErrDispatch is returned when a notification cannot be delivered.
var ErrDispatch = errors.New("notification dispatch failed")

// Template parameter names shared with the portal's mail templates. These are
// a wire contract and must not change.
const (
	ParamToName        = "to_name"
	ParamToEmail       = "to_email"
	ParamPassword      = "password"
	ParamReceiverEmail = "receiver_email"
	ParamMobileNumber  = "mobile_number"
	ParamUsername      = "username"
	ParamStatus        = "status"
)

// Message is one templated notification. Recipient is the delivery target;
// Params carry the template fields.
type Message struct {
	ID         string
	TemplateID string
	Recipient  string
	Params     map[string]string
}

// Dispatcher delivers a single templated message.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

// NoOpDispatcher silently discards every message.
type NoOpDispatcher struct{}

// Send implements [Dispatcher] by doing nothing.
func (NoOpDispatcher) Send(context.Context, Message) error { return nil }

package easel

import (
	"errors"
	"fmt"
)

// ErrUnknownSignal is returned when connecting to a signal name that the
// widget did not register.
var ErrUnknownSignal = errors.New("unknown signal")

// SignalName identifies a signal a widget can emit. Each widget type
// registers a closed set of names at construction; connecting to anything
// outside that set fails with ErrUnknownSignal.
type SignalName string

// SignalHub is a typed registration and dispatch table for one widget
// instance. Handlers run synchronously, in registration order, on the thread
// that triggered the emission.
type SignalHub struct {
	registered map[SignalName]struct{}
	plain      map[SignalName][]func()
	stringed   map[SignalName][]func(payload string)
}

// NewSignalHub creates a hub with the given closed set of signal names.
func NewSignalHub(names ...SignalName) *SignalHub {
	registered := make(map[SignalName]struct{}, len(names))
	for _, name := range names {
		registered[name] = struct{}{}
	}
	return &SignalHub{
		registered: registered,
		plain:      make(map[SignalName][]func()),
		stringed:   make(map[SignalName][]func(string)),
	}
}

// Connect registers a parameterless handler. Works for every signal; string
// payloads are dropped.
func (h *SignalHub) Connect(name SignalName, fn func()) error {
	if err := h.check(name); err != nil {
		return err
	}
	h.plain[name] = append(h.plain[name], fn)
	return nil
}

// ConnectString registers a handler receiving the signal's string payload.
// Handlers connected to a payload-less signal receive "".
func (h *SignalHub) ConnectString(name SignalName, fn func(payload string)) error {
	if err := h.check(name); err != nil {
		return err
	}
	h.stringed[name] = append(h.stringed[name], fn)
	return nil
}

// Emit dispatches a payload-less signal.
func (h *SignalHub) Emit(name SignalName) {
	h.EmitString(name, "")
}

// EmitString dispatches a signal carrying a string payload.
func (h *SignalHub) EmitString(name SignalName, payload string) {
	if _, ok := h.registered[name]; !ok {
		return
	}
	for _, fn := range h.plain[name] {
		fn()
	}
	for _, fn := range h.stringed[name] {
		fn(payload)
	}
}

func (h *SignalHub) check(name SignalName) error {
	if _, ok := h.registered[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSignal, name)
	}
	return nil
}

package event

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/DioGolang/acme/pkg/events"
	"github.com/DioGolang/acme/pkg/metrics"
)

var ErrHandlerAlreadyRegistered = errors.New("handler already registered")

// Dispatcher delivers events to in-process handlers, synchronously and in
// registration order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]events.EventHandler
	metrics  metrics.Metrics
}

func NewDispatcher(m metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]events.EventHandler),
		metrics:  m,
	}
}

func (d *Dispatcher) Register(eventName string, handler events.EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if slices.Contains(d.handlers[eventName], handler) {
		return fmt.Errorf("%s: %w", eventName, ErrHandlerAlreadyRegistered)
	}
	d.handlers[eventName] = append(d.handlers[eventName], handler)
	return nil
}

// Dispatch runs every handler even if one fails; the failures are joined.
func (d *Dispatcher) Dispatch(ctx context.Context, event events.Event) error {
	d.mu.RLock()
	handlers := slices.Clone(d.handlers[event.GetName()])
	d.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if d.metrics != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		d.metrics.RecordEventDispatched(event.GetName(), status)
	}
	return err
}

func (d *Dispatcher) Remove(eventName string, handler events.EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventName] = slices.DeleteFunc(d.handlers[eventName], func(h events.EventHandler) bool {
		return h == handler
	})
	return nil
}

func (d *Dispatcher) Has(eventName string, handler events.EventHandler) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Contains(d.handlers[eventName], handler)
}

func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers = make(map[string][]events.EventHandler)
}

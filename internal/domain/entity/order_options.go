package entity

import (
	"strings"
	"time"
)

const StandardDelivery = "standard delivery"

type orderOptions struct {
	deliverBy    *time.Time
	instructions string
}

type OrderOption func(*orderOptions)

// WithDeliveryDate requests delivery by the given date. The date is printed
// in its own location, so the offset only pins the instant.
func WithDeliveryDate(date time.Time) OrderOption {
	return func(o *orderOptions) {
		o.deliverBy = &date
	}
}

// WithInstructions replaces the standard delivery instructions. Blank
// instructions are ignored.
func WithInstructions(instructions string) OrderOption {
	return func(o *orderOptions) {
		if strings.TrimSpace(instructions) == "" {
			return
		}
		o.instructions = instructions
	}
}

func newOrderOptions(opts []OrderOption) orderOptions {
	options := orderOptions{instructions: StandardDelivery}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

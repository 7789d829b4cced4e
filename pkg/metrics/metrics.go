package metrics

import "time"

type Metrics interface {
	// Business
	RecordOrderPlaced(status string)
	RecordEmailsSent(kind string, count int)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure
	RecordEventDispatched(eventName, status string)
}

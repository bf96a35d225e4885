package service

import "time"

// Delivery outcomes reported to MetricsRecorder
const (
	DeliveryOutcomeDelivered = "delivered"
	DeliveryOutcomeFailed    = "failed"
	DeliveryOutcomeExpired   = "expired"
)

// MetricsRecorder receives engine measurements
type MetricsRecorder interface {
	LocationUpdated()
	RegionsMatched(count int)
	CooldownSuppressed()
	DeliveryObserved(outcome string)
	DispatchObserved(elapsed time.Duration)
}

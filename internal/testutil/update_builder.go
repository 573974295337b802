package testutil

import (
	"time"

	"github.com/develper21/ppdu/core"
)

// UpdateBuilder provides a fluent helper for constructing context updates in
// tests.
// Example:
//
//	update := NewUpdateBuilder().At(23, 30).Activity(core.ActivityWalking).Build()
//
// Chain only the parts you need; sensible defaults are applied (a Manhattan
// fix stamped at 21:00).
type UpdateBuilder struct {
	location core.GeoLocation
	update   core.ContextUpdate
}

// NewUpdateBuilder creates a builder with a default daytime location fix.
func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{
		location: core.GeoLocation{
			Latitude:  40.7128,
			Longitude: -74.0060,
			Timestamp: time.Date(2023, 10, 27, 21, 0, 0, 0, time.UTC),
		},
	}
}

// At sets the fix's local hour and minute (chainable).
func (b *UpdateBuilder) At(hour, minute int) *UpdateBuilder {
	b.location.Timestamp = time.Date(2023, 10, 27, hour, minute, 0, 0, time.UTC)
	return b
}

// Position sets the fix coordinates (chainable).
func (b *UpdateBuilder) Position(lat, lon float64) *UpdateBuilder {
	b.location.Latitude = lat
	b.location.Longitude = lon
	return b
}

// Activity sets the reported activity (chainable).
func (b *UpdateBuilder) Activity(activity core.Activity) *UpdateBuilder {
	b.update.Activity = &activity
	return b
}

// Battery sets the reported battery level (chainable).
func (b *UpdateBuilder) Battery(level float64) *UpdateBuilder {
	b.update.BatteryLevel = &level
	return b
}

// AudioAnomaly flags a detected audio anomaly (chainable).
func (b *UpdateBuilder) AudioAnomaly() *UpdateBuilder {
	anomaly := true
	b.update.AudioAnomalyDetected = &anomaly
	return b
}

// RouteDeviation flags a detected route deviation (chainable).
func (b *UpdateBuilder) RouteDeviation() *UpdateBuilder {
	deviation := true
	b.update.RouteDeviationDetected = &deviation
	return b
}

// Build returns the assembled partial update.
func (b *UpdateBuilder) Build() core.ContextUpdate {
	location := b.location
	b.update.Location = &location
	return b.update
}

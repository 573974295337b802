package dispatch

import (
	"context"

	"github.com/develper21/ppdu/core"
	"github.com/develper21/ppdu/logging"
)

// LogChannels implements all three channel contracts by logging the call
// instead of invoking a real integration. Useful for development, examples
// and any deployment where a channel is intentionally disabled.
type LogChannels struct {
	logger logging.Logger
}

// NewLogChannels constructs logging channels over the given logger.
func NewLogChannels(logger logging.Logger) *LogChannels {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &LogChannels{logger: logger}
}

// Notify logs the notification instead of pushing it to a device.
func (c *LogChannels) Notify(_ context.Context, subjectID, message string) error {
	c.logger.Info("[NOTIFICATION] subject_id=%s message=%q", subjectID, message)
	return nil
}

// SendAlert logs the alert instead of sending an SMS.
func (c *LogChannels) SendAlert(_ context.Context, subjectID, message string) error {
	c.logger.Info("[SMS] subject_id=%s message=%q", subjectID, message)
	return nil
}

// Call logs the escalation instead of invoking the authority integration.
func (c *LogChannels) Call(_ context.Context, subjectID, message string, location core.GeoLocation) error {
	c.logger.Info("[AUTHORITY CALL] subject_id=%s message=%q lat=%.4f lon=%.4f",
		subjectID, message, location.Latitude, location.Longitude)
	return nil
}

// Interface compliance (compile-time assertions)
var (
	_ core.NotificationChannel = (*LogChannels)(nil)
	_ core.MessagingChannel    = (*LogChannels)(nil)
	_ core.AuthorityChannel    = (*LogChannels)(nil)
)

package facades

import (
	"context"

	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
)

// LogOTPSender delivers codes by writing them to the log.
// It stands in for an SMS gateway.
type LogOTPSender struct{}

// NewLogOTPSender creates a LogOTPSender.
func NewLogOTPSender() *LogOTPSender {
	return &LogOTPSender{}
}

// Send logs the code for mobile.
func (s *LogOTPSender) Send(ctx context.Context, mobile, code string) error {
	logger.FromContext(ctx).Infow("otp issued", "mobile_number", mobile, "otp", code)
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-code-review/internal/logger"
)

// OTPPurger clears passcodes that outlived their lifetime.
type OTPPurger interface {
	PurgeExpiredOTPs(ctx context.Context) (int64, error)
}

type otpCleanupWorker struct {
	purger   OTPPurger
	interval time.Duration
	logger   *logger.Logger
}

func NewOTPCleanupWorker(purger OTPPurger, interval time.Duration, logger *logger.Logger) Worker {
	return &otpCleanupWorker{purger: purger, interval: interval, logger: logger}
}

// Run sweeps expired passcodes every interval until ctx is cancelled. A
// failed sweep is logged and retried on the next tick.
func (w *otpCleanupWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Str("func", "*otpCleanupWorker.Run").Dur("interval", w.interval).Msg("otp cleanup started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "*otpCleanupWorker.Run").Msg("otp cleanup stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *otpCleanupWorker) sweep(ctx context.Context) {
	n, err := w.purger.PurgeExpiredOTPs(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "*otpCleanupWorker.sweep").Msg("purging expired passcodes failed")
		}
		return
	}
	if n > 0 {
		w.logger.Info().Str("func", "*otpCleanupWorker.sweep").Int64("cleared", n).Msg("expired passcodes cleared")
	}
}

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package retry re-runs transiently failing remote calls with exponential
// backoff. It exists once so every remote call in the pipeline shares one
// policy instead of growing its own loop.
package retry

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Config controls how often and how patiently a call is retried
type Config struct {
	MaxAttempts  int           // Total attempts including the first one
	InitialDelay time.Duration // Delay before the first retry
	MaxDelay     time.Duration // Ceiling on the delay between retries
	Multiplier   float64       // Backoff multiplier for each subsequent retry
}

// 📝 DefaultConfig returns the policy used for spreadsheet API calls. The
// store enforces per-minute quotas, so delays start high enough that a burst
// of workers backs off out of the quota window.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
}

// 🔄 Do runs fn until it succeeds, returns a permanent error, or exhausts
// the attempt budget. op names the call in logs and wrapped errors. The
// context is honored while waiting between attempts; an in-flight fn call is
// never interrupted.
func Do(ctx context.Context, cfg Config, op string, fn func() error) error {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(cfg, attempt-1)
			zerolog.Ctx(ctx).Warn().
				Str("operation", op).
				Int("attempt", attempt+1).
				Int("max_attempts", attempts).
				Dur("delay", delay).
				Err(lastErr).
				Msg("remote call failed, retrying")

			select {
			case <-ctx.Done():
				return errors.Errorf("%s: canceled while waiting to retry: %w", op, ctx.Err())
			case <-time.After(delay):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			return errors.Errorf("%s: %w", op, err)
		}
		lastErr = err

		if ctx.Err() != nil {
			return errors.Errorf("%s: %w", op, lastErr)
		}
	}

	return errors.Errorf("%s failed after %d attempts: %w", op, attempts, lastErr)
}

// 🔄 DoValue is Do for calls that return a value alongside the error.
func DoValue[T any](ctx context.Context, cfg Config, op string, fn func() (T, error)) (T, error) {
	var out T
	err := Do(ctx, cfg, op, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

// backoffDelay calculates the delay before the given retry attempt,
// exponential with jitter and capped at MaxDelay.
func backoffDelay(cfg Config, attemptNum int) time.Duration {
	multiplier := cfg.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	backoff := float64(cfg.InitialDelay) * math.Pow(multiplier, float64(attemptNum))

	// Add some jitter (±10%) so parallel workers don't retry in lockstep
	jitterFactor := 0.9 + 0.2*float64(time.Now().Nanosecond())/1e9
	backoff *= jitterFactor

	if cfg.MaxDelay > 0 && backoff > float64(cfg.MaxDelay) {
		backoff = float64(cfg.MaxDelay)
	}

	return time.Duration(backoff)
}

// permanentError marks an error that retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// 🔒 Permanent marks err as not retryable, e.g. a rejected request that
// would fail identically on every attempt. Do returns it immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// 🔍 IsPermanent reports whether err (or anything it wraps) was marked with
// Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

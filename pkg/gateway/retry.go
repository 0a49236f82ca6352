package gateway

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Policy bounds how often one logical request may reach the provider.
// MaxAttempts of 1 (the default) means at most once: nothing is retried.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

var AtMostOnce = Policy{MaxAttempts: 1}

type retryingGateway struct {
	Gateway
	policy Policy
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithPolicy wraps g so that transient provider errors are retried with
// jittered exponential backoff. Empty responses and any non-transient error
// are returned on first occurrence.
func WithPolicy(g Gateway, policy Policy, logger *zap.Logger) Gateway {
	if policy.MaxAttempts <= 1 {
		return g
	}
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = 500 * time.Millisecond
	}
	return &retryingGateway{Gateway: g, policy: policy, logger: logger, sleep: sleepCtx}
}

func (r *retryingGateway) Complete(ctx context.Context, req Request) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		text, err := r.Gateway.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		var perr *ProviderError
		if !errors.As(err, &perr) || !perr.Transient || attempt == r.policy.MaxAttempts {
			return "", err
		}

		delay := backoff(r.policy.BaseDelay, attempt)
		r.logger.Warn("transient provider error, retrying",
			zap.String("provider", r.Name()),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := r.sleep(ctx, delay); err != nil {
			return "", lastErr
		}
	}
	return "", lastErr
}

// backoff doubles the base delay per attempt and adds up to 50% jitter.
func backoff(base time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	return d + time.Duration(rand.Int63n(int64(d)/2+1))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

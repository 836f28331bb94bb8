package service

import "time"

// RetryPolicy bounds the remote-call retries around payment creation. Only
// transient order-service failures qualify for a retry; everything else
// short-circuits on the first attempt.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy matches the production defaults: three attempts with a
// doubling delay capped at two seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    2 * time.Second,
	}
}

// Delay returns the wait before the next attempt, after `failures` failed
// attempts: BaseDelay doubled per failure, capped at MaxDelay.
func (p RetryPolicy) Delay(failures int) time.Duration {
	if p.BaseDelay <= 0 || failures < 1 {
		return 0
	}
	delay := p.BaseDelay * time.Duration(1<<(failures-1))
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

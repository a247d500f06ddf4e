package retry

import (
	"math"
	"time"
)

// Policy describes how a failing operation is retried.
// The zero value runs the operation once.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// Multiplier scales the delay after each retry (typically 2.0).
	Multiplier float64

	// MaxDelay caps the wait between attempts.
	MaxDelay time.Duration

	// IsTransient reports whether an error is worth retrying.
	// Nil treats every error as fatal.
	IsTransient func(error) bool

	// Sleep waits between attempts. Nil uses time.Sleep.
	Sleep func(time.Duration)

	// OnRetry is called before each wait, with the 1-based retry number.
	OnRetry func(retry int, err error, delay time.Duration)
}

// FileWritePolicy retries transient file errors four times over roughly
// three quarters of a second.
func FileWritePolicy() Policy {
	return Policy{
		MaxAttempts:  5,
		InitialDelay: 50 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     time.Second,
		IsTransient:  IsTransientFileError,
	}
}

// Delay returns the wait before the given 1-based retry.
func (p Policy) Delay(retry int) time.Duration {
	if retry < 1 || p.InitialDelay <= 0 {
		return 0
	}
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	delay := float64(p.InitialDelay) * math.Pow(multiplier, float64(retry-1))
	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(delay)
}

// Do runs op until it succeeds, fails with a non-transient error, or the
// attempts are exhausted. It returns the last error.
func (p Policy) Do(op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	err := op()
	for retry := 1; err != nil && retry < attempts; retry++ {
		if p.IsTransient == nil || !p.IsTransient(err) {
			return err
		}
		delay := p.Delay(retry)
		if p.OnRetry != nil {
			p.OnRetry(retry, err, delay)
		}
		sleep(delay)
		err = op()
	}
	return err
}

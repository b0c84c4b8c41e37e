package utils

import "time"

// WithBackoff thử lại fn tối đa maxAttempts lần, delay nhân đôi sau mỗi lần
// và không vượt quá maxDelay.
func WithBackoff(maxAttempts int, baseDelay, maxDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == maxAttempts-1 {
			break
		}
		time.Sleep(delay)
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return err
}

package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration reports an error unless d > 0.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange reports an error unless min <= d <= max.
//
// Example:
//
//	if err := ValidateDurationRange(timeout, 100*time.Millisecond, 10*time.Second); err != nil {
//	    return fmt.Errorf("invalid render timeout: %w", err)
//	}
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}
	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}
	return nil
}

// DurationInRange returns d when it lies within [min, max] and fallback otherwise,
// together with the validation error that caused the fallback.
func DurationInRange(d, min, max, fallback time.Duration) (time.Duration, error) {
	if err := ValidateDurationRange(d, min, max); err != nil {
		return fallback, err
	}
	return d, nil
}

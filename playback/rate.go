package playback

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DefaultFPS is the playback rate used when the source rate is unknown.
const DefaultFPS = 24

// ErrInvalidRate indicates a frame rate that cannot be used for pacing.
var ErrInvalidRate = errors.New("invalid frame rate")

// Rate is a rational frame rate in frames per second.
type Rate struct {
	Num int
	Den int
}

// RateFromFPS converts frames per second to a [Rate] with millisecond
// precision. Values that round to zero or below are rejected.
func RateFromFPS(fps float64) (Rate, error) {
	r := Rate{Num: int(math.Round(fps * 1000)), Den: 1000}

	err := r.Validate()
	if err != nil {
		return Rate{}, fmt.Errorf("%w: %v fps", err, fps)
	}

	return r, nil
}

// Validate reports whether r describes a positive frame rate.
func (r Rate) Validate() error {
	if r.Den == 0 {
		return fmt.Errorf("%w: zero denominator in %d/%d", ErrInvalidRate, r.Num, r.Den)
	}

	if r.FPS() <= 0 {
		return fmt.Errorf("%w: %d/%d is not positive", ErrInvalidRate, r.Num, r.Den)
	}

	return nil
}

// FPS returns the rate as frames per second. It returns zero for a zero
// denominator.
func (r Rate) FPS() float64 {
	if r.Den == 0 {
		return 0
	}

	return float64(r.Num) / float64(r.Den)
}

// Interval returns the delay between consecutive frames.
func (r Rate) Interval() time.Duration {
	fps := r.FPS()
	if fps <= 0 {
		fps = DefaultFPS
	}

	return time.Duration(float64(time.Second) / fps)
}

func (r Rate) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

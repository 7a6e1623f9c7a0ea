package analytics

import "time"

// SetClock pins the service clock.
func (s *Service) SetClock(now time.Time) {
	s.now = func() time.Time { return now }
}

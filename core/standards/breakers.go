// Package standards holds the AS/NZS reference tables the sizing engine
// selects from: the standard protective-device rating ladder, the cable
// ampacity tables, and the switchboard catalog. The data is a fixed
// snapshot of the published tables; selection always rounds up to the
// next qualifying entry, never down.
package standards

// BreakerLadder is the ordered set of standard protective-device
// ratings in amperes, AS/NZS 60898 and AS/NZS 60947.2, extended for
// large DC chargers. Strictly increasing.
var BreakerLadder = []int{
	6, 10, 16, 20, 25, 32, 40, 50, 63, 80, 100, 125, 160, 200,
	250, 315, 400, 500, 630, 800, 1000, 1200, 1600, 2000,
}

// MaxBreakerA is the largest rating on the ladder.
func MaxBreakerA() int {
	return BreakerLadder[len(BreakerLadder)-1]
}

// NextBreaker returns the smallest standard rating that is at least
// requiredA. ok is false when the ladder is exhausted; callers must
// treat that as a failure, not substitute the maximum.
func NextBreaker(requiredA float64) (ratingA int, ok bool) {
	for _, b := range BreakerLadder {
		if float64(b) >= requiredA {
			return b, true
		}
	}
	return 0, false
}

package file

import "time"

// Decision is the outcome of evaluating a public verification request.
type Decision int

const (
	Allowed Decision = iota
	DeniedPrivate
	DeniedExpired
)

// Evaluate is the verification gate: a pure predicate re-run on every
// request, no cached state and no side effects.
//
// Privacy is checked before expiry so a private record never reveals its
// expiry policy to a requester who was not entitled to see it at all.
// Expiry is strict: a record whose ExpiresAt equals now is still allowed.
func Evaluate(r *Record, now time.Time) Decision {
	if r.Access != AccessPublic {
		return DeniedPrivate
	}
	if r.ExpiresAt != nil && r.ExpiresAt.Before(now) {
		return DeniedExpired
	}
	return Allowed
}

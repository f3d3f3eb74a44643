package domain

// EventStatus is the moderation state of a listing.
// pending is the initial state for public submissions; approved and rejected
// are terminal. There is no re-review path: an admin edit changes content
// fields but never reverts status.
type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"
	StatusRejected EventStatus = "rejected"
)

func (s EventStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

package domain

import "time"

// ActivityKind names a state-changing operation recorded in the activity log.
type ActivityKind string

const (
	ActivityLogin          ActivityKind = "login"
	ActivityRSVPSaved      ActivityKind = "rsvp_saved"
	ActivityCommentAdded   ActivityKind = "comment_added"
	ActivityAccountCreated ActivityKind = "account_created"
	ActivityAccountDeleted ActivityKind = "account_deleted"
	ActivityAccountUpdated ActivityKind = "account_updated"
	ActivityPersonAdded    ActivityKind = "person_added"
	ActivityPersonDeleted  ActivityKind = "person_deleted"
)

// Activity is one audit entry. Username is the account the change applies
// to; Actor is who made it.
type Activity struct {
	Username   string       `json:"user_username"`
	Actor      string       `json:"actor"`
	Kind       ActivityKind `json:"kind"`
	Detail     string       `json:"detail,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

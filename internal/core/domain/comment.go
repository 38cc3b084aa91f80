package domain

import "time"

// Comment is a free-text message left by an account. Comments are
// append-only; Seq orders them by submission.
type Comment struct {
	Seq       int64     `json:"seq"`
	Username  string    `json:"user_username"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

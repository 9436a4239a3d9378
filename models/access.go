package models

import "time"

// AccessRequest is a pending ask for a demo password. Exactly one of Email or
// Phone is set. Approval assigns a password and flips Approved; a request is
// approved at most once.
type AccessRequest struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Password  string    `json:"password,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

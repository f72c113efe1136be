package models

// Suspect is an account flagged as potentially abusive, held in a per-guild
// working list for staff review.
type Suspect struct {
	AccountID string
	Account   Account
	Flags     FlagSet
	Score     int
}

package models

import "fmt"

// Flag is a boolean heuristic signal about an account.
type Flag int

const (
	FlagSuspiciousUsername Flag = iota
	FlagNoMessages
	FlagNoAvatar
	FlagAccountAgeBelow2Weeks
)

// AllFlags lists every flag in enumeration order. Rendering and scoring
// iterate over this slice so output order is stable.
var AllFlags = []Flag{
	FlagSuspiciousUsername,
	FlagNoMessages,
	FlagNoAvatar,
	FlagAccountAgeBelow2Weeks,
}

var flagWeights = map[Flag]int{
	FlagSuspiciousUsername:    1,
	FlagNoMessages:            1,
	FlagNoAvatar:              1,
	FlagAccountAgeBelow2Weeks: 2,
}

var flagLabels = map[Flag]string{
	FlagSuspiciousUsername:    "suspicious username",
	FlagNoMessages:            "no messages sent",
	FlagNoAvatar:              "no profile picture",
	FlagAccountAgeBelow2Weeks: "account age below 2 weeks",
}

// Weight returns the score contribution of the flag when set.
func (f Flag) Weight() int {
	return flagWeights[f]
}

// Label returns the human-readable name of the flag.
func (f Flag) Label() string {
	return flagLabels[f]
}

// FlagSet maps every flag to whether it is raised. Always constructed via
// NewFlagSet so every enumerated key is present, never partial.
type FlagSet map[Flag]bool

// NewFlagSet returns a flag set with every flag present and unset.
func NewFlagSet() FlagSet {
	fs := make(FlagSet, len(AllFlags))
	for _, f := range AllFlags {
		fs[f] = false
	}
	return fs
}

// Score returns the weighted sum of raised flags.
func (fs FlagSet) Score() int {
	score := 0
	for _, f := range AllFlags {
		if fs[f] {
			score += f.Weight()
		}
	}
	return score
}

// Describe returns one "{label} +{weight}" string per raised flag, in
// enumeration order. Empty slice when nothing is raised.
func (fs FlagSet) Describe() []string {
	descriptions := make([]string, 0, len(AllFlags))
	for _, f := range AllFlags {
		if fs[f] {
			descriptions = append(descriptions, fmt.Sprintf("%s +%d", f.Label(), f.Weight()))
		}
	}
	return descriptions
}

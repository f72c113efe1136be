package service

import (
	"testing"
	"time"

	"shieldbot/models"

	"github.com/stretchr/testify/assert"
)

func account(id, username, avatarURL string, age time.Duration, now time.Time) models.Account {
	return models.Account{
		ID:        id,
		Username:  username,
		Tag:       username + "#0001",
		AvatarURL: avatarURL,
		CreatedAt: now.Add(-age),
	}
}

func TestIsSpamLikeName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Bob1234", true},
		{"Alice99", true},
		{" Bob1234 ", true}, // surrounding whitespace is trimmed
		{"bob1234", false},  // not capitalized
		{"BOB1234", false},  // all caps
		{"Bob", false},      // no digits
		{"Bob1234x", false}, // trailing letters
		{"B1", false},       // single leading letter
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSpamLikeName(tt.name), "name %q", tt.name)
	}
}

func TestComputeFlags_AccountAge(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ageDays int
		flagged bool
	}{
		{0, true},
		{3, true},
		{11, true},
		{12, false},
		{14, false},
		{100, false},
	}

	for _, tt := range tests {
		acc := account("1", "steady", "https://cdn.example/avatar.png", time.Duration(tt.ageDays)*24*time.Hour, now)
		flags := ComputeFlags(acc, now)
		assert.Equal(t, tt.flagged, flags[models.FlagAccountAgeBelow2Weeks], "age %d days", tt.ageDays)
	}
}

func TestComputeFlags_EveryKeyPresent(t *testing.T) {
	now := time.Now()
	flags := ComputeFlags(account("1", "steady", "url", 100*24*time.Hour, now), now)

	assert.Len(t, flags, len(models.AllFlags))
	for _, f := range models.AllFlags {
		_, present := flags[f]
		assert.True(t, present, "flag %d missing from template", f)
	}
}

func TestComputeFlags_NoMessagesNeverRaised(t *testing.T) {
	now := time.Now()
	flags := ComputeFlags(account("1", "Bob1234", "", 0, now), now)
	assert.False(t, flags[models.FlagNoMessages])
}

func TestFlagSet_Score(t *testing.T) {
	flags := models.NewFlagSet()
	assert.Equal(t, 0, flags.Score())

	flags[models.FlagSuspiciousUsername] = true
	flags[models.FlagAccountAgeBelow2Weeks] = true
	assert.Equal(t, 3, flags.Score())

	flags[models.FlagNoAvatar] = true
	assert.Equal(t, 4, flags.Score())

	flags[models.FlagNoMessages] = true
	assert.Equal(t, 5, flags.Score())
}

func TestFlagSet_DescribeEnumerationOrder(t *testing.T) {
	flags := models.NewFlagSet()
	// Raise in reverse order; output must still follow the enumeration.
	flags[models.FlagAccountAgeBelow2Weeks] = true
	flags[models.FlagNoAvatar] = true
	flags[models.FlagSuspiciousUsername] = true

	assert.Equal(t, []string{
		"suspicious username +1",
		"no profile picture +1",
		"account age below 2 weeks +2",
	}, flags.Describe())

	assert.Empty(t, models.NewFlagSet().Describe())
}

func TestComputeFlags_SpamBotEndToEnd(t *testing.T) {
	now := time.Now()
	acc := account("42", "Bob1234", "", 3*24*time.Hour, now)

	flags := ComputeFlags(acc, now)

	assert.True(t, flags[models.FlagSuspiciousUsername])
	assert.True(t, flags[models.FlagNoAvatar])
	assert.True(t, flags[models.FlagAccountAgeBelow2Weeks])
	assert.Equal(t, 4, flags.Score())
}

func TestBuildSuspectList_FiltersAndSorts(t *testing.T) {
	now := time.Now()
	candidates := []models.Account{
		// Scores 4, sorted after Alice99.
		account("2", "Zara77", "", 2*24*time.Hour, now),
		// Scores 4.
		account("1", "Alice99", "", 2*24*time.Hour, now),
		// Fails the name pre-filter even though its other flags would
		// put it over threshold.
		account("3", "xx_fresh_xx", "", 1*24*time.Hour, now),
		// Matches the name pattern but scores only 1.
		account("4", "Carl55", "https://cdn.example/a.png", 400*24*time.Hour, now),
	}

	suspects := BuildSuspectList(candidates, 3, now)

	assert.Len(t, suspects, 2)
	assert.Equal(t, "Alice99", suspects[0].Account.Username)
	assert.Equal(t, "Zara77", suspects[1].Account.Username)
	assert.Equal(t, 4, suspects[0].Score)
}

func TestBuildSuspectList_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildSuspectList(nil, 3, time.Now()))
}

func TestDayDiff(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DayDiff(base, base))
	assert.Equal(t, 3, DayDiff(base, base.Add(-3*24*time.Hour)))
	// Partial days round up.
	assert.Equal(t, 1, DayDiff(base, base.Add(-1*time.Hour)))
	// Symmetric.
	assert.Equal(t, 5, DayDiff(base.Add(-5*24*time.Hour), base))
}

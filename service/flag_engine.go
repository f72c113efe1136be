package service

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"shieldbot/models"
)

// spamBotNameRegex matches a capitalized word immediately followed by
// digits, e.g. "Bob1234" - the naming scheme of bulk-created spam accounts.
var spamBotNameRegex = regexp.MustCompile(`^[A-Z][a-z]+[0-9]+$`)

// accountAgeFlagDays is the age below which an account raises the
// young-account flag.
const accountAgeFlagDays = 12

// IsSpamLikeName reports whether the display name matches the spam-bot
// naming pattern. Also used as a cheap pre-filter before scoring a full
// member snapshot.
func IsSpamLikeName(name string) bool {
	return spamBotNameRegex.MatchString(strings.TrimSpace(name))
}

// DayDiff returns the absolute difference between two instants in days,
// rounded up.
func DayDiff(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// ComputeFlags evaluates every heuristic against the account. Pure and
// deterministic given its inputs. The no-messages flag is part of the
// enumeration but has no input signal wired to it, so it is never raised.
func ComputeFlags(account models.Account, now time.Time) models.FlagSet {
	flags := models.NewFlagSet()

	if IsSpamLikeName(account.Username) {
		flags[models.FlagSuspiciousUsername] = true
	}
	if account.AvatarURL == "" {
		flags[models.FlagNoAvatar] = true
	}
	if DayDiff(now, account.CreatedAt) < accountAgeFlagDays {
		flags[models.FlagAccountAgeBelow2Weeks] = true
	}

	return flags
}

// BuildSuspectList turns a guild member snapshot into a scored suspect
// list. Candidates whose name fails the spam pattern are skipped before
// scoring, the rest are sorted by username and kept when their score
// reaches the threshold.
func BuildSuspectList(candidates []models.Account, threshold int, now time.Time) []*models.Suspect {
	potential := make([]models.Account, 0, len(candidates))
	for _, account := range candidates {
		if IsSpamLikeName(account.Username) {
			potential = append(potential, account)
		}
	}

	// Sort before scoring so suspect indices are stable for staff commands.
	sort.Slice(potential, func(i, j int) bool {
		return potential[i].Username < potential[j].Username
	})

	suspects := make([]*models.Suspect, 0, len(potential))
	for _, account := range potential {
		flags := ComputeFlags(account, now)
		score := flags.Score()
		if score >= threshold {
			suspects = append(suspects, &models.Suspect{
				AccountID: account.ID,
				Account:   account,
				Flags:     flags,
				Score:     score,
			})
		}
	}
	return suspects
}

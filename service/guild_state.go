package service

import (
	"sync"

	"shieldbot/models"
)

// GuildState owns the in-memory per-guild moderation state: the working
// suspect lists and the cached rejoin invites. Injected into the workflow
// rather than held as package globals. Entries are replaced or removed by
// the operations that logically complete them; nothing expires.
type GuildState struct {
	mu       sync.RWMutex
	suspects map[string][]*models.Suspect
	invites  map[string]string
}

// NewGuildState creates an empty guild state container.
func NewGuildState() *GuildState {
	return &GuildState{
		suspects: make(map[string][]*models.Suspect),
		invites:  make(map[string]string),
	}
}

// ReplaceSuspects swaps the guild's suspect list wholesale, discarding any
// previous unconsumed list.
func (g *GuildState) ReplaceSuspects(guildID string, suspects []*models.Suspect) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.suspects[guildID] = suspects
}

// Suspects returns the guild's current suspect list, empty when absent.
func (g *GuildState) Suspects(guildID string) []*models.Suspect {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.suspects[guildID]
}

// RemoveSuspectsAt removes the entries at the given zero-based positions.
// Positions refer to the list before any removal in this call, duplicates
// count once and out-of-range values are ignored. Returns the remaining
// list.
func (g *GuildState) RemoveSuspectsAt(guildID string, indices []int) []*models.Suspect {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.suspects[guildID]
	if len(current) == 0 {
		return current
	}

	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(current) {
			drop[i] = true
		}
	}

	remaining := make([]*models.Suspect, 0, len(current)-len(drop))
	for i, s := range current {
		if !drop[i] {
			remaining = append(remaining, s)
		}
	}
	g.suspects[guildID] = remaining
	return remaining
}

// ClearSuspects drops the guild's suspect list.
func (g *GuildState) ClearSuspects(guildID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.suspects, guildID)
}

// SetInviteURL caches the rejoin invite for the guild. Best-effort: the
// invite may go stale if it expires on the platform side.
func (g *GuildState) SetInviteURL(guildID, url string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invites[guildID] = url
}

// InviteURL returns the cached rejoin invite for the guild, empty when none
// was cached.
func (g *GuildState) InviteURL(guildID string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.invites[guildID]
}

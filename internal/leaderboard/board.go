// Package leaderboard keeps the in-memory top-scores list and defines the
// persistence boundary. The board itself is pure state; where and how it is
// stored is the gateway's problem.
package leaderboard

import (
	"sort"
	"strings"
)

// DefaultSize is the number of entries kept when no size is configured.
const DefaultSize = 10

// NameLength is the fixed arcade-style name length.
const NameLength = 3

// Mode tags an entry with the player count it was earned in.
type Mode int

const (
	ModeSingle Mode = iota
	ModeTwo
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "1P"
	case ModeTwo:
		return "2P"
	default:
		return "??"
	}
}

// PlayerCount returns how many player slots the mode allocates.
func (m Mode) PlayerCount() int {
	if m == ModeTwo {
		return 2
	}
	return 1
}

// Entry is a single leaderboard record.
type Entry struct {
	Name  string `json:"name"` // Exactly three letters A-Z
	Score int    `json:"score"`
	Mode  Mode   `json:"mode"`
}

// Gateway is the persistence boundary for the leaderboard. Implementations
// may fail; the board degrades to empty on load errors and ignores save
// errors, per the fire-and-forget persistence model.
type Gateway interface {
	// Load returns the persisted entries in rank order, at most the cap.
	// Absent or unparsable data must be reported as an empty list, not an
	// error.
	Load() ([]Entry, error)

	// Save persists the given entries, replacing whatever was stored.
	Save(entries []Entry) error
}

// NopGateway is a Gateway that stores nothing. Used when persistence is
// unavailable so the game keeps an in-memory leaderboard for the session.
type NopGateway struct{}

// Load always returns an empty list.
func (NopGateway) Load() ([]Entry, error) { return nil, nil }

// Save discards the entries.
func (NopGateway) Save([]Entry) error { return nil }

// Board holds the ranked list, capped and sorted descending by score at all
// times. Ties keep insertion order.
type Board struct {
	gw      Gateway
	size    int
	entries []Entry
}

// New creates a board backed by the given gateway. A nil gateway behaves
// like NopGateway. Size <= 0 falls back to DefaultSize.
func New(gw Gateway, size int) *Board {
	if gw == nil {
		gw = NopGateway{}
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Board{gw: gw, size: size}
}

// SetSize changes the cap, truncating if the list is longer.
// n <= 0 keeps the current size.
func (b *Board) SetSize(n int) {
	if n <= 0 {
		return
	}
	b.size = n
	if len(b.entries) > n {
		b.entries = b.entries[:n]
	}
}

// Reload replaces the in-memory list with the persisted one. A failed or
// empty load leaves an empty board; that is "no leaderboard yet", never an
// error the game has to care about.
func (b *Board) Reload() {
	entries, err := b.gw.Load()
	if err != nil || entries == nil {
		b.entries = nil
		return
	}
	if len(entries) > b.size {
		entries = entries[:b.size]
	}
	b.entries = entries
}

// Add inserts an entry, re-sorts descending by score (stable, so ties keep
// insertion order), truncates to the cap, and persists. Save failures are
// ignored; the in-memory list is already updated.
func (b *Board) Add(e Entry) {
	e.Name = SanitizeName(e.Name)
	b.entries = append(b.entries, e)
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
	//nolint:errcheck // Fire-and-forget persistence; in-memory state is canonical
	b.gw.Save(b.entries)
}

// Entries returns a copy of the current list in rank order.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Top returns at most n leading entries.
func (b *Board) Top(n int) []Entry {
	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]Entry, n)
	copy(out, b.entries[:n])
	return out
}

// Len returns the number of entries on the board.
func (b *Board) Len() int {
	return len(b.entries)
}

// SanitizeName forces a name into exactly three uppercase letters A-Z,
// padding with 'A' and replacing anything out of range.
func SanitizeName(name string) string {
	var sb strings.Builder
	sb.Grow(NameLength)
	up := strings.ToUpper(name)
	for i := 0; i < NameLength; i++ {
		c := byte('A')
		if i < len(up) && up[i] >= 'A' && up[i] <= 'Z' {
			c = up[i]
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

package coin

import "time"

// EntrySource identifies what produced a ledger entry.
type EntrySource string

const (
	SourceClockIn       EntrySource = "clock_in"
	SourceShiftClosed   EntrySource = "shift_closed"
	SourceManualAward   EntrySource = "manual_award"
	SourceRewardRedeem  EntrySource = "reward_redeem"
)

// Entry is one row of the append-only coin ledger. Balances are never
// stored; they are the sum of a member's entries.
type Entry struct {
	ID         string
	BusinessID string
	UserID     string
	Amount     int
	Source     EntrySource
	Reason     *string
	// RefID points at the row that produced the entry (shift id, reward
	// id) when there is one.
	RefID     *string
	CreatedAt time.Time
}

type Reward struct {
	ID          string
	BusinessID  string
	Name        string
	Description *string
	CostCoins   int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

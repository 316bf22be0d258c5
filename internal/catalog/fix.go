// Package catalog holds the fixed 101-item fixes list, its filter semantics,
// and per-visitor progress tracking with pluggable persistence.
package catalog

// Difficulty labels the effort class of a fix.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy Fix"
	DifficultyMedium Difficulty = "Medium Fix"
	DifficultyHard   Difficulty = "Hard Fix"
)

// Channel labels the marketing surface a fix applies to.
type Channel string

const (
	ChannelLandingPage Channel = "Landing Page"
	ChannelPaidAds     Channel = "Paid Ads"
	ChannelEmail       Channel = "Email"
	ChannelMarketing   Channel = "Marketing"
)

// Progress is the per-visitor tracking state of one fix.
type Progress string

const (
	ProgressPending    Progress = "Pending"
	ProgressInProgress Progress = "In Progress"
	ProgressDone       Progress = "Done"
)

// Valid reports whether p is one of the three known progress values.
func (p Progress) Valid() bool {
	switch p {
	case ProgressPending, ProgressInProgress, ProgressDone:
		return true
	}
	return false
}

// Fix is one static catalog entry describing an ecommerce improvement tactic.
type Fix struct {
	ID         int        `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Channel    Channel    `json:"channel"`
	Problem    string     `json:"problem"`
	Solution   string     `json:"solution"`
	Example    string     `json:"example"`
}

// Size is the number of entries in the catalog. Ids form the contiguous
// range 1..Size.
const Size = 101

// All returns the full catalog in ascending id order. Callers must treat the
// returned slice as read-only.
func All() []Fix {
	return fixes
}

// ByID returns the fix with the given id. The second return is false for ids
// outside 1..Size.
func ByID(id int) (Fix, bool) {
	if id < 1 || id > Size {
		return Fix{}, false
	}
	return fixes[id-1], true
}

// ValidID reports whether id belongs to the catalog.
func ValidID(id int) bool {
	return id >= 1 && id <= Size
}

package catalog

import "strings"

// FilterAll is the wildcard value for the three category filters.
const FilterAll = "All"

// Query narrows the catalog view. Zero value / "All" fields match everything.
// Progress matching consults ProgressMap; ids absent from the map count as
// Pending.
type Query struct {
	SearchTerm  string
	Difficulty  string
	Channel     string
	Progress    string
	ProgressMap ProgressMap
}

// NewQuery returns a query that matches the whole catalog.
func NewQuery() Query {
	return Query{
		Difficulty: FilterAll,
		Channel:    FilterAll,
		Progress:   FilterAll,
	}
}

// Reset clears the search term and all three category filters. The progress
// map is left untouched.
func (q *Query) Reset() {
	q.SearchTerm = ""
	q.Difficulty = FilterAll
	q.Channel = FilterAll
	q.Progress = FilterAll
}

// Filter returns the fixes matching every predicate of q, preserving the
// input order. It is a pure function: no hidden state, safe to re-run on
// every keystroke.
func Filter(fixes []Fix, q Query) []Fix {
	term := strings.ToLower(q.SearchTerm)
	out := make([]Fix, 0, len(fixes))
	for _, fix := range fixes {
		if !matchesSearch(fix, term) {
			continue
		}
		if q.Difficulty != "" && q.Difficulty != FilterAll && string(fix.Difficulty) != q.Difficulty {
			continue
		}
		if q.Channel != "" && q.Channel != FilterAll && string(fix.Channel) != q.Channel {
			continue
		}
		if q.Progress != "" && q.Progress != FilterAll {
			if string(q.ProgressMap.Effective(fix.ID)) != q.Progress {
				continue
			}
		}
		out = append(out, fix)
	}
	return out
}

func matchesSearch(fix Fix, loweredTerm string) bool {
	if loweredTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(fix.Problem), loweredTerm) ||
		strings.Contains(strings.ToLower(fix.Solution), loweredTerm) ||
		strings.Contains(strings.ToLower(fix.Example), loweredTerm)
}

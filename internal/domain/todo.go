package domain

// Todo is a single to-do item tied to a calendar date.
// Only Checked changes after creation.
type Todo struct {
	ID      int64
	Date    Date
	Content string
	Checked bool
}

// DaySummary counts the todos stored under one date.
type DaySummary struct {
	Date  Date
	Total int
	Done  int
}

// Open returns how many todos of the day are still unchecked.
func (s DaySummary) Open() int {
	return s.Total - s.Done
}

// AllDone reports whether the day has todos and every one is checked.
func (s DaySummary) AllDone() bool {
	return s.Total > 0 && s.Done == s.Total
}

package sqlite

// Todo is one row of the todos table.
type Todo struct {
	ID      int64
	Date    string // YYYY-MM-DD
	Content string
	Checked bool
}

// DateCount aggregates the todos stored under a single date.
type DateCount struct {
	Date  string
	Total int
	Done  int
}

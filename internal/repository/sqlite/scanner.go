package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTodo scans a single todo. Columns: id, date, content, checked.
func ScanTodo(scanner Scanner) (*Todo, error) {
	todo := &Todo{}
	var checked int64
	if err := scanner.Scan(&todo.ID, &todo.Date, &todo.Content, &checked); err != nil {
		return nil, err
	}
	todo.Checked = checked != 0
	return todo, nil
}

// ScanTodos scans every remaining row as a todo.
func ScanTodos(rows Rows) ([]*Todo, error) {
	return scanAll(rows, ScanTodo)
}

// ScanDateCount scans a single aggregate row. Columns: date, total, done.
func ScanDateCount(scanner Scanner) (*DateCount, error) {
	count := &DateCount{}
	var total, done int64
	if err := scanner.Scan(&count.Date, &total, &done); err != nil {
		return nil, err
	}
	count.Total = int(total)
	count.Done = int(done)
	return count, nil
}

// ScanDateCounts scans every remaining row as a date aggregate.
func ScanDateCounts(rows Rows) ([]*DateCount, error) {
	return scanAll(rows, ScanDateCount)
}

func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	results := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

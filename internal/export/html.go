package export

import (
	"bytes"
	"html/template"
	"io"
	"os"

	"daily-todo/internal/domain"
	"daily-todo/internal/errors"
)

const (
	markDone = "✔️"
	markOpen = "❌"
)

var pageTemplate = template.Must(template.New("todos").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{- range .Groups}}
<h2>{{.Date}}</h2>
<ul>
{{- range .Items}}
<li>{{.Mark}} {{.Content}}</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
`))

type page struct {
	Title  string
	Groups []group
}

type group struct {
	Date  string
	Items []item
}

type item struct {
	Mark    string
	Content string
}

// Title returns the page heading for an export of one date, or of every
// date when date is zero.
func Title(date domain.Date) string {
	if date.IsZero() {
		return "To-do list"
	}
	return "To-do list for " + date.String()
}

// WriteHTML renders todos as an HTML page with one section per date.
// Todos must already be ordered by date; sections follow first appearance.
func WriteHTML(w io.Writer, title string, todos []*domain.Todo) error {
	p := page{Title: title, Groups: make([]group, 0)}
	for _, todo := range todos {
		date := todo.Date.String()
		if n := len(p.Groups); n == 0 || p.Groups[n-1].Date != date {
			p.Groups = append(p.Groups, group{Date: date})
		}
		mark := markOpen
		if todo.Checked {
			mark = markDone
		}
		last := &p.Groups[len(p.Groups)-1]
		last.Items = append(last.Items, item{Mark: mark, Content: todo.Content})
	}
	return pageTemplate.Execute(w, p)
}

// WriteHTMLFile renders todos into path, replacing any existing file.
// Nothing is written when rendering fails.
func WriteHTMLFile(path, title string, todos []*domain.Todo) error {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, title, todos); err != nil {
		return errors.NewInvalidInputError("export", title, err.Error())
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.NewInvalidInputError("path", path, err.Error())
	}
	return nil
}

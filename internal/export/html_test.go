package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"daily-todo/internal/domain"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func sampleTodos() []*domain.Todo {
	june1 := domain.NewDate(2024, 6, 1)
	june2 := domain.NewDate(2024, 6, 2)
	return []*domain.Todo{
		{ID: 1, Date: june1, Content: "Buy milk", Checked: false},
		{ID: 2, Date: june1, Content: "Milk & eggs", Checked: true},
		{ID: 3, Date: june2, Content: "<b>bold</b>", Checked: false},
	}
}

func TestWriteHTML_AllDates(t *testing.T) {
	var buf bytes.Buffer

	err := WriteHTML(&buf, Title(domain.Date{}), sampleTodos())

	require.NoError(t, err)
	newGolden(t).Assert(t, "export_all", buf.Bytes())
}

func TestWriteHTML_SingleDate(t *testing.T) {
	var buf bytes.Buffer
	date := domain.NewDate(2024, 6, 1)

	err := WriteHTML(&buf, Title(date), sampleTodos()[:2])

	require.NoError(t, err)
	newGolden(t).Assert(t, "export_single_date", buf.Bytes())
}

func TestWriteHTML_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := WriteHTML(&buf, Title(domain.Date{}), nil)

	require.NoError(t, err)
	newGolden(t).Assert(t, "export_empty", buf.Bytes())
}

func TestWriteHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.html")

	require.NoError(t, WriteHTMLFile(path, "To-do list", sampleTodos()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<li>✔️ Milk &amp; eggs</li>")
	assert.Contains(t, string(data), "<li>❌ &lt;b&gt;bold&lt;/b&gt;</li>")
}

func TestWriteHTMLFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "todos.html")

	err := WriteHTMLFile(path, "To-do list", sampleTodos())

	assert.Error(t, err)
}

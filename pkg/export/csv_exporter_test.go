package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRender(t *testing.T) {
	exporter := NewCSVExporter()

	data := Dataset{
		Headers: []string{"A", "B"},
		Rows: []map[string]string{
			{"A": `x"y`, "B": "1"},
		},
	}

	out, err := exporter.Render(data)
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "\uFEFF"), "starts with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(content, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A,B", lines[0], "header row is unquoted")
	assert.Equal(t, `"x\"y","1"`, lines[1], "values quoted, inner quotes backslash-escaped")
}

func TestCSVRenderMissingCells(t *testing.T) {
	exporter := NewCSVExporter()

	data := Dataset{
		Headers: []string{"A", "B"},
		Rows:    []map[string]string{{"A": "only"}},
	}

	out, err := exporter.Render(data)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"only",""`)
}

func TestCSVRenderKeepsUnicode(t *testing.T) {
	exporter := NewCSVExporter()

	data := Dataset{
		Headers: []string{"Họ tên"},
		Rows:    []map[string]string{{"Họ tên": "Nguyễn Văn An"}},
	}

	out, err := exporter.Render(data)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Nguyễn Văn An", "CSV is not transliterated")
}

func TestCSVRenderNoHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})
	assert.Error(t, err)
}

package output

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-envjson/internal/converter"
	"github.com/MKhiriev/go-envjson/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func sampleNamespace() *models.Namespace {
	ns := models.NewNamespace([]string{"INHERITED=yes", "APP_ENV=production"}, "")
	ns.Set("PORT", 3000.0)
	ns.Set("HOST", "localhost")
	ns.Set("DB", map[string]any{"name": "app"})
	return ns
}

func render(t *testing.T, format string, all bool, ns *models.Namespace) string {
	t.Helper()
	r, err := NewRenderer(format, all)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, ns))
	return buf.String()
}

// ── NewRenderer ───────────────────────────────────────────────────────────────

func TestNewRenderer_UnknownFormat(t *testing.T) {
	r, err := NewRenderer("xml", false)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// ── json ──────────────────────────────────────────────────────────────────────

func TestJSON_ResolutionOrder(t *testing.T) {
	got := render(t, FormatJSON, false, sampleNamespace())

	want := `{
  "PORT": 3000,
  "HOST": "localhost",
  "DB": {
    "name": "app"
  }
}
`
	assert.Equal(t, want, got)
}

func TestJSON_All(t *testing.T) {
	got := render(t, FormatJSON, true, sampleNamespace())

	want := `{
  "PORT": 3000,
  "HOST": "localhost",
  "DB": {
    "name": "app"
  },
  "APP_ENV": "production",
  "INHERITED": "yes"
}
`
	assert.Equal(t, want, got)
}

func TestJSON_Empty(t *testing.T) {
	got := render(t, FormatJSON, false, models.NewNamespace(nil, ""))
	assert.Equal(t, "{}\n", got)
}

func TestJSON_SpecialValues(t *testing.T) {
	ns := models.NewNamespace(nil, "")
	ns.Set("INF", math.Inf(1))
	ns.Set("WHEN", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	ns.Set("FN", converter.Func(func(map[string]any) (any, error) { return nil, nil }))
	ns.Set("LIST", []any{1.0, math.NaN()})

	got := render(t, FormatJSON, false, ns)

	assert.Contains(t, got, `"INF": null`)
	assert.Contains(t, got, `"WHEN": "2024-01-02T03:04:05Z"`)
	assert.Contains(t, got, `"FN": null`)
	assert.Contains(t, got, "\"LIST\": [\n    1,\n    null\n  ]")
}

// ── yaml ──────────────────────────────────────────────────────────────────────

func TestYAML_ResolutionOrder(t *testing.T) {
	got := render(t, FormatYAML, false, sampleNamespace())

	want := `PORT: 3000
HOST: localhost
DB:
  name: app
`
	assert.Equal(t, want, got)
}

func TestYAML_RoundTrip(t *testing.T) {
	ns := sampleNamespace()
	ns.Set("FLAGS", []any{true, "x"})
	ns.Set("EMPTY", nil)

	got := render(t, FormatYAML, true, ns)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, 3000, decoded["PORT"])
	assert.Equal(t, "localhost", decoded["HOST"])
	assert.Equal(t, []any{true, "x"}, decoded["FLAGS"])
	assert.Nil(t, decoded["EMPTY"])
	assert.Equal(t, "yes", decoded["INHERITED"])
}

// ── dotenv ────────────────────────────────────────────────────────────────────

func TestDotenv(t *testing.T) {
	ns := models.NewNamespace(nil, "")
	ns.Set("PORT", 3000.0)
	ns.Set("DEBUG", false)
	ns.Set("DB", map[string]any{"name": "app"})
	ns.Set("GREETING", "hello world")
	ns.Set("NONE", nil)

	got := render(t, FormatDotenv, false, ns)

	want := `PORT=3000
DEBUG=false
DB="{\"name\":\"app\"}"
GREETING="hello world"
NONE=null
`
	assert.Equal(t, want, got)
}

func TestQuoteDotenv(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", `""`},
		{"a b", `"a b"`},
		{"$HOME", `"\$HOME"`},
		{"line1\nline2", `"line1\nline2"`},
		{`back\slash`, `"back\\slash"`},
		{"x=y", `"x=y"`},
		{"# not a comment", `"# not a comment"`},
		{"it's", `"it's"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteDotenv(tt.in))
		})
	}
}

// ── table ─────────────────────────────────────────────────────────────────────

func TestTable(t *testing.T) {
	ns := sampleNamespace()
	ns.Set("STARTED", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	ns.Set("NOTE", "two\nlines")

	got := render(t, FormatTable, false, ns)
	lines := bytes.Split(bytes.TrimRight([]byte(got), "\n"), []byte("\n"))

	require.Len(t, lines, 7)
	assert.Contains(t, string(lines[0]), "KEY")
	assert.Contains(t, string(lines[0]), "VALUE")
	assert.Contains(t, string(lines[1]), "─┼─")
	assert.Contains(t, string(lines[2]), "PORT")
	assert.Contains(t, string(lines[2]), "number")
	assert.Contains(t, string(lines[2]), "3000")
	assert.Contains(t, string(lines[4]), `{"name":"app"}`)
	assert.Contains(t, string(lines[5]), "date")
	assert.Contains(t, string(lines[6]), `two\nlines`)
}

func TestTable_Empty(t *testing.T) {
	got := render(t, FormatTable, false, models.NewNamespace(nil, ""))
	assert.Contains(t, got, "no variables resolved")
}

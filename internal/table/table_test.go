package table

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christoph-blessing/sinzlab-tools/internal/record"
)

func makeRecord(pairs ...string) record.Record {
	var r record.Record
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

func TestRenderBasicAlignment(t *testing.T) {
	fields := record.FieldSet{"INDEX", "UTIL (%)"}
	hosts := record.HostRecords{
		"gpu1.lab": {makeRecord("INDEX", "0", "UTIL (%)", "45")},
	}

	out := Render(fields, hosts)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "HOST      INDEX  UTIL (%)", lines[0])
	assert.Equal(t, "--------  -----  --------", lines[1])
	assert.Equal(t, "gpu1.lab  0      45      ", lines[2])
}

func TestRenderHostsSorted(t *testing.T) {
	fields := record.FieldSet{"INDEX"}
	hosts := record.HostRecords{
		"zeta.lab":  {makeRecord("INDEX", "0")},
		"alpha.lab": {makeRecord("INDEX", "0")},
		"mid.lab":   {makeRecord("INDEX", "0")},
	}

	out := Render(fields, hosts)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[2], "alpha.lab"))
	assert.True(t, strings.HasPrefix(lines[3], "mid.lab"))
	assert.True(t, strings.HasPrefix(lines[4], "zeta.lab"))
}

func TestRenderDeterministic(t *testing.T) {
	fields := record.FieldSet{"ID", "Image"}
	hosts := record.HostRecords{
		"b.lab": {makeRecord("ID", "1", "Image", "nginx"), makeRecord("ID", "2", "Image", "redis")},
		"a.lab": {makeRecord("ID", "3", "Image", "postgres")},
		"c.lab": nil,
	}

	first := Render(fields, hosts)
	second := Render(fields, hosts)

	assert.Equal(t, first, second)
}

func TestRenderEmptyHostsContributeNoRows(t *testing.T) {
	fields := record.FieldSet{"INDEX", "UTIL (%)", "TEMP (°C)", "USED (MiB)", "TOTAL (MiB)"}
	hosts := record.HostRecords{
		"x.lab": nil,
		"y.lab": {},
	}

	out := Render(fields, hosts)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header and separator only.
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "HOST")
	assert.NotContains(t, out, "x.lab")
	assert.NotContains(t, out, "y.lab")
}

func TestRenderGPUScenario(t *testing.T) {
	// Host X reports one GPU, host Y has none.
	fields := record.FieldSet{"INDEX", "UTIL (%)", "TEMP (°C)", "USED (MiB)", "TOTAL (MiB)"}
	hosts := record.HostRecords{
		"x.lab": {makeRecord(
			"INDEX", "0",
			"UTIL (%)", "45",
			"TEMP (°C)", "60",
			"USED (MiB)", "2048",
			"TOTAL (MiB)", "8192",
		)},
		"y.lab": nil,
	}

	out := Render(fields, hosts)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 3, "one data row expected")
	for _, header := range fields {
		assert.Contains(t, lines[0], header)
	}
	assert.True(t, strings.HasPrefix(lines[2], "x.lab"))
	assert.Contains(t, lines[2], "2048")
	assert.Contains(t, lines[2], "8192")
}

func TestRenderMissingCellsAreEmpty(t *testing.T) {
	fields := record.FieldSet{"A", "B", "C"}
	hosts := record.HostRecords{
		"h.lab": {makeRecord("A", "1")}, // B and C absent
	}

	out := Render(fields, hosts)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 3)
	// Row keeps the full column count, padded with spaces.
	assert.Equal(t, len(lines[1]), len(lines[2]))
}

func TestRenderExtraFieldsAppendAfterDeclared(t *testing.T) {
	fields := record.FieldSet{"ID", "Image"}
	hosts := record.HostRecords{
		"h.lab": {makeRecord("ID", "abc", "Image", "nginx", "GPU", "all")},
	}

	out := Render(fields, hosts)
	header := strings.Split(out, "\n")[0]

	idIdx := strings.Index(header, "ID")
	imageIdx := strings.Index(header, "Image")
	gpuIdx := strings.Index(header, "GPU")
	assert.True(t, idIdx < imageIdx && imageIdx < gpuIdx, "GPU column must trail declared columns")
}

func TestWidthsCoverHeadersAndCells(t *testing.T) {
	fields := record.FieldSet{"ID", "Image"}
	hosts := record.HostRecords{
		"verylonghostname.example.com": {makeRecord("ID", "abc", "Image", "registry.example.com/team/app:latest")},
		"s.lab":                        {makeRecord("ID", "0123456789abcdef", "Image", "redis")},
	}

	widths := Widths(fields, hosts)

	require.Len(t, widths, 3)
	assert.GreaterOrEqual(t, widths[0], len("verylonghostname.example.com"))
	assert.GreaterOrEqual(t, widths[0], len("HOST"))
	assert.GreaterOrEqual(t, widths[1], len("0123456789abcdef"))
	assert.GreaterOrEqual(t, widths[2], len("registry.example.com/team/app:latest"))
}

func TestRenderColorStylesHeaderOnly(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	fields := record.FieldSet{"ID"}
	hosts := record.HostRecords{
		"h.lab": {makeRecord("ID", "abc")},
	}

	out := Render(fields, hosts, WithColor(true))
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines[0], "\x1b[", "header should carry ANSI styling")
	assert.NotContains(t, lines[2], "\x1b[", "data rows stay plain")
}

func TestRenderNoColorByDefault(t *testing.T) {
	fields := record.FieldSet{"ID"}
	hosts := record.HostRecords{
		"h.lab": {makeRecord("ID", "abc")},
	}

	out := Render(fields, hosts)

	assert.NotContains(t, out, "\x1b[")
}

package netuse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Output of `net use` on a machine with two connections, as
// captured, CRLF included.
var twoEntries = strings.Join([]string{
	"New connections will be remembered.",
	"",
	"",
	"Status       Local     Remote                    Network",
	"",
	"-------------------------------------------------------------------------------",
	`OK           Z:        \\storage01\backups       Microsoft Windows Network`,
	`Disconnected Y:        \\storage01\media         Microsoft Windows Network`,
	"The command completed successfully.",
	"",
}, "\r\n")

var noEntries = strings.Join([]string{
	"New connections will be remembered.",
	"",
	"There are no entries in the list.",
	"",
}, "\r\n")

// An entry whose remote path overflows its cell pushes the
// network name onto a continuation line.
var overflowEntry = strings.Join([]string{
	"New connections will be remembered.",
	"",
	"",
	"Status       Local     Remote                    Network",
	"",
	"-------------------------------------------------------------------------------",
	`OK           Z:        \\fileserver-far-away.example.com\backup-archive`,
	"                                                Microsoft Windows Network",
	`OK           Y:        \\storage01\media         Microsoft Windows Network`,
	"The command completed successfully.",
	"",
}, "\r\n")

func header(status, local, remote, network string) string {
	return fmt.Sprintf("%-13s%-10s%-26s%s", status, local, remote, network)
}

func entry(status, local, remote string) string {
	return header(status, local, remote, "Microsoft Windows Network")
}

func listing(entries ...string) string {
	lines := []string{
		"New connections will be remembered.",
		"",
		"",
		header("Status", "Local", "Remote", "Network"),
		"",
		strings.Repeat("-", 79),
	}
	lines = append(lines, entries...)
	lines = append(lines, "The command completed successfully.", "")
	return strings.Join(lines, "\r\n")
}

func TestParseTableEntries(t *testing.T) {
	assert := assert.New(t)

	table, err := ParseTable(twoEntries)
	require.NoError(t, err)
	assert.Equal([]Row{
		{Local: "Z:", Remote: `\\storage01\backups`, Status: "OK"},
		{Local: "Y:", Remote: `\\storage01\media`, Status: "Disconnected"},
	}, table.Rows)

	assert.Equal([]string{`\\storage01\backups`, `\\storage01\media`}, table.ConnectedPaths())
	assert.Equal([]string{"Z:", "Y:"}, table.ConnectedDevices())
}

func TestParseTableEmpty(t *testing.T) {
	assert := assert.New(t)

	table, err := ParseTable(noEntries)
	require.NoError(t, err)
	assert.Empty(table.Rows)
	assert.Empty(table.ConnectedPaths())
	assert.Empty(table.ConnectedDevices())
}

func TestParseTableDriveless(t *testing.T) {
	assert := assert.New(t)

	table, err := ParseTable(listing(
		entry("OK", "", `\\home\shared`),
		entry("OK", "Z:", `\\storage01\backups`),
	))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(Row{Local: "", Remote: `\\home\shared`, Status: "OK"}, table.Rows[0])

	// A driveless entry appears among the paths but not among
	// the devices.
	assert.Equal([]string{`\\home\shared`, `\\storage01\backups`}, table.ConnectedPaths())
	assert.Equal([]string{"Z:"}, table.ConnectedDevices())
}

func TestParseTableOverflow(t *testing.T) {
	assert := assert.New(t)

	table, err := ParseTable(overflowEntry)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(Row{
		Local:  "Z:",
		Remote: `\\fileserver-far-away.example.com\backup-archive`,
		Status: "OK",
	}, table.Rows[0])
	assert.Equal(Row{
		Local:  "Y:",
		Remote: `\\storage01\media`,
		Status: "OK",
	}, table.Rows[1])
}

func TestParseTableShortOverflow(t *testing.T) {
	assert := assert.New(t)

	// A body row shorter than the column layout followed by a
	// continuation line parses instead of panicking, with the
	// overflow cell collapsing to empty.
	table, err := ParseTable(listing(
		"OK",
		`          \\host\a-rather-long-share-name`,
	))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal("", table.Rows[0].Remote)
}

func TestParseTableUnrecognized(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseTable("")
	assert.Error(err)

	_, err = ParseTable("The syntax of this command is:\r\n\r\nNET USE ...\r\n")
	assert.Error(err)

	// A separator without the expected headings above it.
	_, err = ParseTable(strings.Join([]string{
		header("State", "Device", "Target", "Network"),
		strings.Repeat("-", 79),
		entry("OK", "Z:", `\\storage01\backups`),
	}, "\r\n"))
	assert.Error(err)
}

func TestMatch(t *testing.T) {
	assert := assert.New(t)

	table, err := ParseTable(listing(
		entry("OK", "Z:", `\\storage01\backups`),
		entry("Disconnected", "", `\\HOME\Shared`),
		entry("OK", "", `\\storage01\IPC$`),
	))
	require.NoError(t, err)

	// Both criteria.
	rows := table.Match("Z:", `\\storage01\backups`)
	require.Len(t, rows, 1)
	assert.Equal("OK", rows[0].Status)

	// Device alone, spelled without the colon and in lower
	// case.
	rows = table.Match("z", "")
	require.Len(t, rows, 1)
	assert.Equal(`\\storage01\backups`, rows[0].Remote)

	// Remote alone, differing in case and trailing backslash.
	rows = table.Match("", `\\home\SHARED\`)
	require.Len(t, rows, 1)
	assert.Equal("Disconnected", rows[0].Status)

	// The administrative ipc$ share matches its plain host
	// path.
	rows = table.Match("", `\\storage01`)
	require.Len(t, rows, 1)
	assert.Equal(`\\storage01\IPC$`, rows[0].Remote)

	// No criteria matches everything.
	assert.Len(table.Match("", ""), 3)

	// Mismatched pair.
	assert.Empty(table.Match("Y:", `\\storage01\backups`))
}

func TestDeviceNamesEqual(t *testing.T) {
	assert := assert.New(t)

	assert.True(DeviceNamesEqual("Z:", "z"))
	assert.True(DeviceNamesEqual("z:", "Z:"))
	assert.True(DeviceNamesEqual("", ""))
	assert.False(DeviceNamesEqual("Z:", "Y:"))
	assert.False(DeviceNamesEqual("Z:", ""))
}

func TestNormalizeRemote(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"lower cases", `\\Host\Share`, `\\host\share`},
		{"trims trailing backslashes", `\\host\share\\`, `\\host\share`},
		{"drops the ipc share", `\\host\IPC$`, `\\host`},
		{"drops a trailed ipc share", `\\host\ipc$\`, `\\host`},
		{"keeps inner segments", `\\host\share\sub`, `\\host\share\sub`},
		{"keeps an ipc prefix", `\\host\ipc$x`, `\\host\ipc$x`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRemote(tt.path))
		})
	}
}

package netuse

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// Printed instead of a table when nothing is connected.
	emptyTableIndicator = "There are no entries in the list."

	// Trailer line closing a populated table.
	lastTableLine = "The command completed successfully."
)

// Row is one connection entry of the status table. The cells
// keep the raw text of the table; Local is empty for
// connections without a local device name.
type Row struct {
	Local  string
	Remote string
	Status string
}

// Table is the parsed NET USE status table.
type Table struct {
	Rows []Row
}

// ConnectedPaths lists the remote path of every entry.
func (t *Table) ConnectedPaths() []string {
	paths := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		paths = append(paths, row.Remote)
	}
	return paths
}

// ConnectedDevices lists the local device of every entry that
// has one, in table order. Driveless entries contribute
// nothing.
func (t *Table) ConnectedDevices() []string {
	devices := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Local == "" {
			continue
		}
		devices = append(devices, row.Local)
	}
	return devices
}

// Match returns the entries agreeing with the given local
// device and remote path. An empty criterion matches any
// value. Device comparison ignores case and a trailing colon,
// remote comparison uses NormalizeRemote on both sides.
func (t *Table) Match(local, remote string) []Row {
	var rows []Row
	for _, row := range t.Rows {
		if local != "" && !DeviceNamesEqual(row.Local, local) {
			continue
		}
		if remote != "" && !remotePathsEqual(row.Remote, remote) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// DeviceNamesEqual compares two local device designators,
// ignoring case and a trailing colon, so "Z", "z:" and "Z:"
// all name the same drive.
func DeviceNamesEqual(left, right string) bool {
	return strings.EqualFold(
		strings.TrimRight(left, ":"),
		strings.TrimRight(right, ":"),
	)
}

// NormalizeRemote brings a remote UNC path into comparable
// form: lower case, trailing backslashes removed, and a
// trailing administrative ipc$ share dropped.
func NormalizeRemote(path string) string {
	path = strings.TrimRight(strings.ToLower(path), `\`)
	return strings.TrimSuffix(path, `\ipc$`)
}

func remotePathsEqual(left, right string) bool {
	return NormalizeRemote(left) == NormalizeRemote(right)
}

// ParseTable parses the captured output of a bare NET USE
// invocation. The no-entries notice yields an empty table;
// output without a recognizable table layout is an error.
func ParseTable(output string) (*Table, error) {
	if strings.Contains(output, emptyTableIndicator) {
		return &Table{}, nil
	}
	lines := tableLines(output)
	columns, separator, err := tableColumns(lines)
	if err != nil {
		return nil, err
	}
	table := &Table{}
	for _, row := range parseBody(tableBody(lines, separator), columns) {
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// column is one fixed-width cell range. An end of -1 extends
// the cell to the end of the line.
type column struct {
	name  string
	start int
	end   int
}

func (c column) extract(line string) string {
	if c.start >= len(line) {
		return ""
	}
	end := c.end
	if end < 0 || end > len(line) {
		end = len(line)
	}
	if end < c.start {
		// A re-anchored overflow cell can end before it starts
		// when the first line is shorter than the column layout.
		end = c.start
	}
	return strings.TrimSpace(line[c.start:end])
}

// tableLines splits the output into lines with trailing
// whitespace removed, which also absorbs CRLF endings.
func tableLines(output string) []string {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return lines
}

// isSeparator recognizes the all-dashes line between the
// headings and the body.
func isSeparator(line string) bool {
	if line == "" {
		return false
	}
	for _, c := range line {
		if c != '-' {
			return false
		}
	}
	return true
}

// tableColumns locates the headings line, the last line before
// the separator that starts with a letter, and derives the
// cell ranges from the heading offsets. Each cell ends one
// character short of the next heading; the last cell runs to
// the end of the line.
func tableColumns(lines []string) ([]column, int, error) {
	separator := -1
	for i, line := range lines {
		if isSeparator(line) {
			separator = i
			break
		}
	}
	if separator < 0 {
		return nil, 0, errors.New("no separator line in status output")
	}
	headings := ""
	for _, line := range lines[:separator] {
		if line != "" && isLetter(line[0]) {
			headings = line
		}
	}
	if headings == "" {
		return nil, 0, errors.New("no headings line in status output")
	}
	names := strings.Fields(headings)
	columns := make([]column, len(names))
	for i, name := range names {
		columns[i] = column{name: name, start: strings.Index(headings, name), end: -1}
	}
	for i := 0; i < len(columns)-1; i++ {
		columns[i].end = columns[i+1].start - 1
	}
	for _, required := range []string{"Status", "Local", "Remote"} {
		if !containsColumn(columns, required) {
			return nil, 0, errors.Errorf("status output lacks the %s column", required)
		}
	}
	return columns, separator, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func containsColumn(columns []column, name string) bool {
	for _, c := range columns {
		if c.name == name {
			return true
		}
	}
	return false
}

// tableBody collects the entry lines: everything after the
// separator up to the first blank line or the trailer.
func tableBody(lines []string, separator int) []string {
	var body []string
	for _, line := range lines[separator+1:] {
		if line == "" || line == lastTableLine {
			break
		}
		body = append(body, line)
	}
	return body
}

func parseBody(body []string, columns []column) []Row {
	var rows []Row
	for i, line := range body {
		if strings.HasPrefix(line, " ") {
			// Continuation, consumed with its previous line.
			continue
		}
		if i+1 < len(body) && strings.HasPrefix(body[i+1], " ") {
			rows = append(rows, parseOverflowRow(line, body[i+1], columns))
		} else {
			rows = append(rows, parseRow(line, columns))
		}
	}
	return rows
}

func parseRow(line string, columns []column) Row {
	var row Row
	for _, c := range columns {
		switch c.name {
		case "Local":
			row.Local = c.extract(line)
		case "Remote":
			row.Remote = c.extract(line)
		case "Status":
			row.Status = c.extract(line)
		}
	}
	return row
}

// parseOverflowRow joins an entry whose remote path overflowed
// its cell with the indented line carrying the remaining
// cells. The second-to-last cell is widened to the end of the
// first line and the last cell re-anchored past the joint.
func parseOverflowRow(first, second string, columns []column) Row {
	custom := make([]column, len(columns))
	copy(custom, columns)
	if n := len(custom); n >= 2 {
		custom[n-2].end = len(first)
		custom[n-1].start = len(first) + 1
	}
	return parseRow(first+" "+strings.TrimSpace(second), custom)
}

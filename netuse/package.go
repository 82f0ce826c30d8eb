// Package netuse parses the status output of the Windows
// NET USE command into a structured table.
//
// The parser is pure text processing and performs no process
// invocation, so it can be exercised against captured output
// on any platform. The table layout is fixed-width: column
// boundaries are recovered from the offsets of the headings
// line, and entries whose remote path overflows the column
// continue on a following indented line.
package netuse

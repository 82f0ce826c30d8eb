package winunc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors of the validating constructors. Returned
// errors wrap these with the offending input; match with
// errors.Is.
var (
	// ErrInvalidPath rejects a path outside the
	// \\host\share[\more] form.
	ErrInvalidPath = errors.New("invalid UNC path")

	// ErrInvalidDrive rejects a malformed drive designator.
	ErrInvalidDrive = errors.New("invalid drive designator")

	// ErrNoDrivesAvailable reports that every drive letter is
	// taken.
	ErrNoDrivesAvailable = errors.New("no drive letter available")
)

// CommandError reports a tool invocation that exited with
// failure. Output preserves the combined stdout and stderr of
// the process verbatim; the tool explains itself there
// ("System error 85 has occurred. ...") rather than through
// its exit status.
type CommandError struct {
	// Cmd is the command line as issued, with the password
	// argument redacted.
	Cmd string

	// Output is the combined output of the process, verbatim.
	Output string

	// Err is the underlying process error.
	Err error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%q exited with failure", e.Cmd)
	if line := firstLine(e.Output); line != "" {
		return msg + ": " + line
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// firstLine condenses command output to its first non-blank
// line.
func firstLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

package winunc

import (
	"os/exec"

	"github.com/pkg/errors"
)

// CommandRunner executes one external command and captures its
// combined output. Implementations return a non-nil error when
// the process exits with failure; whatever output was captured
// comes back in either case.
//
// The Runner option accepts custom implementations, which is
// how tests feed recorded tool output through the connection
// manager.
type CommandRunner interface {
	Run(name string, args ...string) (output string, err error)
}

// netCommand is the tool the default runner executes. On
// Windows an init pins it inside the system directory so the
// library does not depend on the executable search path.
var netCommand = "net"

// systemRunner runs the real process. Stdin stays at the null
// device, so an unexpected interactive prompt reads EOF and
// fails instead of waiting forever.
type systemRunner struct{}

func (systemRunner) Run(name string, args ...string) (string, error) {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return string(output), errors.Wrapf(err, "run %s", name)
	}
	return string(output), nil
}

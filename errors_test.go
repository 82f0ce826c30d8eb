package winunc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCommandErrorMessage(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("exit status 2")
	err := &CommandError{
		Cmd: `net use Z: \\storage01\backups`,
		Output: "System error 85 has occurred.\r\n\r\n" +
			"The local device name is already in use.\r\n",
		Err: cause,
	}

	// The message leads with the quoted command, backslashes
	// escaped, and the tool's first line of explanation.
	assert.Equal(
		`"net use Z: \\\\storage01\\backups" exited with failure: System error 85 has occurred.`,
		err.Error(),
	)
	assert.Same(cause, errors.Unwrap(err))

	// Without output the process error has to do.
	err = &CommandError{Cmd: "net use", Err: cause}
	assert.Equal(`"net use" exited with failure: exit status 2`, err.Error())

	err = &CommandError{Cmd: "net use"}
	assert.Equal(`"net use" exited with failure`, err.Error())
}

func TestFirstLine(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("System error 53 has occurred.",
		firstLine("\r\n System error 53 has occurred.\r\nThe network path was not found.\r\n"))
	assert.Equal("", firstLine("\r\n \r\n"))
	assert.Equal("", firstLine(""))
}

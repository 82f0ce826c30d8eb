package winunc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/winunc/go-winunc/log"
	"github.com/winunc/go-winunc/netuse"
)

// Connection manages the association between a UNC directory
// and this machine, optionally bound to a local drive letter.
// It keeps no connection state of its own: every status query
// runs the tool, so the answer reflects the system as it is.
//
// A Connection is not safe for concurrent use; the underlying
// tool serializes against system state anyway.
type Connection struct {
	dir        *Directory
	drive      Drive
	persistent bool
	logger     log.Log
	runner     CommandRunner
}

// NewConnection creates a connection manager for the given
// directory. Without options the connection is non-persistent,
// bound to no drive, silent, and runs the real tool.
func NewConnection(dir *Directory, opts ...Option) (*Connection, error) {
	if dir == nil {
		return nil, errors.New("invalid nil directory parameter")
	}
	option := newOption()
	Options(opts...)(option)
	return &Connection{
		dir:        dir,
		drive:      option.drive,
		persistent: option.persistent,
		logger:     option.logger,
		runner:     option.runner,
	}, nil
}

// Directory returns the managed directory.
func (c *Connection) Directory() *Directory { return c.dir }

// Drive returns the bound drive letter, if any.
func (c *Connection) Drive() (Drive, bool) { return c.drive, c.drive.Valid() }

// Persistent reports whether connecting asks the system to
// remember the mapping across logons.
func (c *Connection) Persistent() bool { return c.persistent }

// Username returns the user name the connection authorizes
// with, when one was supplied.
func (c *Connection) Username() (string, bool) {
	username := c.dir.Credentials().Username()
	return username, username != ""
}

// Password returns the password the connection authorizes
// with, when one was supplied.
func (c *Connection) Password() (string, bool) {
	return c.dir.Credentials().Password()
}

// Connect maps the directory, trying the credential variants
// in order from most to least specific and stopping at the
// first one the system accepts. Every failing attempt and the
// final success report one line to the logger. When all
// attempts fail, the returned error is the CommandError of the
// last one, with the tool's output preserved verbatim.
func (c *Connection) Connect() error {
	var last *CommandError
	for _, creds := range credentialCandidates(c.dir.Credentials()) {
		args := connectArgs(c.dir, c.drive, c.persistent, creds)
		output, err := c.runner.Run(netCommand, args...)
		if err == nil {
			c.logger.Line(fmt.Sprintf("connected %s %s",
				c.target(), describeCredentials(creds)))
			return nil
		}
		last = &CommandError{
			Cmd:    redactedCommand(args, creds),
			Output: output,
			Err:    err,
		}
		c.logger.Line(fmt.Sprintf("connecting %s %s failed: %s",
			c.target(), describeCredentials(creds), outputSummary(output, err)))
	}
	return last
}

// Disconnect removes the mapping with a single attempt and no
// credential fallback. On failure the returned CommandError
// preserves the tool's own explanation verbatim.
func (c *Connection) Disconnect() error {
	args := disconnectArgs(c.dir, c.drive)
	output, err := c.runner.Run(netCommand, args...)
	if err != nil {
		c.logger.Line(fmt.Sprintf("disconnecting %s failed: %s",
			c.target(), outputSummary(output, err)))
		return &CommandError{
			Cmd:    commandString(args),
			Output: output,
			Err:    err,
		}
	}
	c.logger.Line(fmt.Sprintf("disconnected %s", c.target()))
	return nil
}

// Status queries the live status table for the state of the
// mapping. The result is StatusNotFound when no entry matches
// the directory, and the bound drive when there is one.
func (c *Connection) Status() (netuse.Status, error) {
	table, err := connectionsWith(c.runner)
	if err != nil {
		return netuse.StatusNotFound, err
	}
	local := ""
	if c.drive.Valid() {
		local = c.drive.String()
	}
	rows := table.Match(local, c.dir.Path())
	if len(rows) == 0 {
		return netuse.StatusNotFound, nil
	}
	return netuse.ParseStatus(rows[0].Status), nil
}

// IsConnected reports whether the mapping exists. A dormant
// Disconnected entry counts as connected since the system
// revives it on the next access; everything else, including no
// entry at all, does not.
func (c *Connection) IsConnected() (bool, error) {
	status, err := c.Status()
	if err != nil {
		return false, err
	}
	return status.Connected(), nil
}

// target names the connection for log lines.
func (c *Connection) target() string {
	if c.drive.Valid() {
		return c.dir.Path() + " (" + c.drive.String() + ")"
	}
	return c.dir.Path()
}

func describeCredentials(creds *Credentials) string {
	if creds.Username() == "" {
		return "without credentials"
	}
	if _, ok := creds.Password(); ok {
		return fmt.Sprintf("as %s with password", creds.Username())
	}
	return fmt.Sprintf("as %s", creds.Username())
}

// outputSummary condenses a failed invocation for a log line,
// preferring the tool's own first line of explanation.
func outputSummary(output string, err error) string {
	if line := firstLine(output); line != "" {
		return line
	}
	return err.Error()
}

func commandString(args []string) string {
	return netCommand + " " + strings.Join(args, " ")
}

// redactedCommand renders the connect command line for error
// reporting with the password argument masked out.
func redactedCommand(args []string, creds *Credentials) string {
	if password, ok := creds.Password(); ok && password != "" {
		masked := make([]string, len(args))
		for i, arg := range args {
			if arg == password {
				arg = "xxxxx"
			}
			masked[i] = arg
		}
		args = masked
	}
	return commandString(args)
}

// Connections returns the system's current connection table.
func Connections() (*netuse.Table, error) {
	return connectionsWith(systemRunner{})
}

func connectionsWith(runner CommandRunner) (*netuse.Table, error) {
	args := statusArgs()
	output, err := runner.Run(netCommand, args...)
	if err != nil {
		return nil, &CommandError{
			Cmd:    commandString(args),
			Output: output,
			Err:    err,
		}
	}
	table, err := netuse.ParseTable(output)
	if err != nil {
		return nil, errors.Wrap(err, "parse status output")
	}
	return table, nil
}

// Mount is a Connection that always has a drive letter, for
// callers thinking in terms of mounting shares onto drives.
type Mount struct {
	Connection
}

// NewMount creates a connection manager binding the directory
// to the given drive.
func NewMount(dir *Directory, drive Drive, opts ...Option) (*Mount, error) {
	if !drive.Valid() {
		return nil, errors.Wrap(ErrInvalidDrive, "mount requires a drive letter")
	}
	conn, err := NewConnection(dir, Options(opts...), MountPoint(drive))
	if err != nil {
		return nil, err
	}
	return &Mount{Connection: *conn}, nil
}

// Mount maps the share onto the drive.
func (m *Mount) Mount() error { return m.Connect() }

// Unmount removes the mapping.
func (m *Mount) Unmount() error { return m.Disconnect() }

// IsMounted reports whether the mapping exists.
func (m *Mount) IsMounted() (bool, error) { return m.IsConnected() }

package winunc

import "github.com/winunc/go-winunc/log"

type option struct {
	drive      Drive
	persistent bool
	logger     log.Log
	runner     CommandRunner
}

func newOption() *option {
	return &option{
		logger: log.NoLog{},
		runner: systemRunner{},
	}
}

// Option is the options that could be passed when creating a
// connection.
type Option func(*option)

// MountPoint binds the connection to a local drive letter, so
// that connecting maps the share onto the drive.
func MountPoint(drive Drive) Option {
	return func(o *option) {
		o.drive = drive
	}
}

// Persistent controls whether the system remembers the mapping
// across logons. Without this option the mapping lasts for the
// session only.
func Persistent(value bool) Option {
	return func(o *option) {
		o.persistent = value
	}
}

// Logger sets the destination for the one-line reports of
// noteworthy actions. The default discards them.
func Logger(value log.Log) Option {
	return func(o *option) {
		if value != nil {
			o.logger = value
		}
	}
}

// LoggerFunc is Logger for a plain function.
func LoggerFunc(value func(string)) Option {
	return func(o *option) {
		if value != nil {
			o.logger = log.Func(value)
		}
	}
}

// Runner replaces the execution of the real tool with a custom
// implementation.
func Runner(value CommandRunner) Option {
	return func(o *option) {
		if value != nil {
			o.runner = value
		}
	}
}

// Options is used to aggregate a bundle of options.
func Options(opts ...Option) Option {
	return func(o *option) {
		for _, opt := range opts {
			opt(o)
		}
	}
}

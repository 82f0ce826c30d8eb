package winunc

import (
	"strings"

	"github.com/pkg/errors"
)

// Drive designates a local disk drive by letter, like "Z:".
// Drives are comparable values; the zero value designates no
// drive and reports false from Valid.
type Drive struct {
	letter byte
}

// NewDrive validates a drive designator. Accepted spellings are
// a bare letter, letter and colon, or letter, colon and a
// trailing backslash, in either case; the drive normalizes to
// the upper case letter. Anything else wraps ErrInvalidDrive.
func NewDrive(s string) (Drive, error) {
	designator := s
	if strings.HasSuffix(designator, `:\`) {
		designator = strings.TrimSuffix(designator, `\`)
	}
	designator = strings.TrimSuffix(designator, ":")
	if len(designator) != 1 || !isDriveLetter(designator[0]) {
		return Drive{}, errors.Wrapf(ErrInvalidDrive, "designator %q", s)
	}
	letter := designator[0]
	if letter >= 'a' {
		letter -= 'a' - 'A'
	}
	return Drive{letter: letter}, nil
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// String returns the canonical designator, letter and colon.
func (d Drive) String() string { return string([]byte{d.letter, ':'}) }

// Letter returns the upper case drive letter.
func (d Drive) Letter() byte { return d.letter }

// Path returns the designator as a root path, like "Z:\".
func (d Drive) Path() string { return d.String() + `\` }

// Valid reports whether the drive came out of NewDrive rather
// than being the zero value.
func (d Drive) Valid() bool { return isDriveLetter(d.letter) }

package winunc

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/winunc/go-winunc/netuse"
)

// Directory names a UNC location like \\host\share\sub,
// optionally together with the credentials used to connect it.
type Directory struct {
	path  string
	creds *Credentials
}

// Characters that cannot occur in a UNC path body. The colon is
// among them since a UNC path has no drive component.
const invalidPathChars = `<>:"/|?*`

// NewDirectory validates the given UNC path and pairs it with
// the credentials, which may be nil. The path must name at
// least a host and a share, \\host\share, optionally followed
// by more segments. Validation failures wrap ErrInvalidPath.
func NewDirectory(path string, creds *Credentials) (*Directory, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	return &Directory{path: path, creds: creds}, nil
}

// ParseDirectory parses the user:password@\\host\share form
// produced by String. The split happens at the last "@\\" so
// the password may itself contain at signs. A bare path parses
// as a directory without credentials.
func ParseDirectory(s string) (*Directory, error) {
	at := strings.LastIndex(s, `@\\`)
	if at < 0 {
		return NewDirectory(s, nil)
	}
	return NewDirectory(s[at+1:], ParseCredentials(s[:at]))
}

func validatePath(path string) error {
	if !strings.HasPrefix(path, `\\`) {
		return errors.Wrapf(ErrInvalidPath, "path %q misses the \\\\ prefix", path)
	}
	body := strings.TrimRight(path[2:], `\`)
	if body == "" || strings.HasPrefix(body, `\`) {
		return errors.Wrapf(ErrInvalidPath, "path %q misses a host name", path)
	}
	segments := strings.Split(body, `\`)
	if len(segments) < 2 {
		return errors.Wrapf(ErrInvalidPath, "path %q misses a share name", path)
	}
	for _, segment := range segments {
		if segment == "" {
			return errors.Wrapf(ErrInvalidPath, "path %q has an empty segment", path)
		}
	}
	if i := strings.IndexAny(body, invalidPathChars); i >= 0 {
		return errors.Wrapf(ErrInvalidPath, "path %q contains %q", path, body[i])
	}
	for _, c := range body {
		if c < 0x1f {
			return errors.Wrapf(ErrInvalidPath, "path %q contains a control character", path)
		}
	}
	return nil
}

// Clone returns a copy of the directory. The clone shares this
// directory's Credentials instead of copying them, so both see
// the same credential identity.
func (d *Directory) Clone() *Directory {
	return &Directory{path: d.path, creds: d.creds}
}

// Path returns the UNC path as given to the constructor.
func (d *Directory) Path() string { return d.path }

// Credentials returns the credentials the directory was built
// with, nil when none were supplied.
func (d *Directory) Credentials() *Credentials { return d.creds }

// NormalizedPath returns the comparable form of the path: lower
// case, trailing backslashes removed, and a trailing
// administrative ipc$ share dropped.
func (d *Directory) NormalizedPath() string {
	return netuse.NormalizeRemote(d.path)
}

// Equal reports whether both directories name the same location
// with the same credentials. Paths compare in normalized form,
// credentials case sensitively.
func (d *Directory) Equal(other *Directory) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.NormalizedPath() == other.NormalizedPath() &&
		d.creds.Equal(other.creds)
}

// String renders the directory in the user:password@\\host\share
// form understood by ParseDirectory. The password appears in
// clear; prefer Redacted for display.
func (d *Directory) String() string {
	if auth := d.creds.AuthString(); auth != "" {
		return auth + "@" + d.path
	}
	return d.path
}

// Redacted is String with the password replaced by "xxxxx".
func (d *Directory) Redacted() string {
	if auth := d.creds.String(); auth != "" {
		return auth + "@" + d.path
	}
	return d.path
}

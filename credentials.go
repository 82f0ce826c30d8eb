package winunc

import "strings"

// Credentials hold the user name and optional password used to
// authorize a share connection. An absent password and an empty
// one differ: an empty password still travels to the tool as an
// argument, an absent one is left out entirely.
//
// Credentials are immutable. A Directory hands the same
// *Credentials to its clones, so the clones share identity with
// the original rather than holding copies.
type Credentials struct {
	username    string
	password    string
	passwordSet bool
}

// User returns Credentials with the given user name and no
// password.
func User(username string) *Credentials {
	return &Credentials{username: username}
}

// UserPassword returns Credentials with the given user name and
// password.
func UserPassword(username, password string) *Credentials {
	return &Credentials{username: username, password: password, passwordSet: true}
}

// ParseCredentials parses the "user:password" auth string form.
// Everything past the first colon belongs to the password, which
// may itself contain colons. Absence survives the round trip:
// "user" carries no password while "user:" carries an empty one.
func ParseCredentials(s string) *Credentials {
	username, password, found := strings.Cut(s, ":")
	if !found {
		return User(username)
	}
	return UserPassword(username, password)
}

// Username returns the stored user name, which may be empty.
func (c *Credentials) Username() string {
	if c == nil {
		return ""
	}
	return c.username
}

// Password returns the stored password and whether one was set
// at all.
func (c *Credentials) Password() (string, bool) {
	if c == nil {
		return "", false
	}
	return c.password, c.passwordSet
}

// AuthString renders the "user:password" form understood by
// ParseCredentials. A set but empty password keeps its colon:
// UserPassword("u", "") yields "u:" while User("u") yields "u".
func (c *Credentials) AuthString() string {
	if c == nil {
		return ""
	}
	if !c.passwordSet {
		return c.username
	}
	return c.username + ":" + c.password
}

// String renders the auth string with the password replaced by
// "xxxxx", safe for display. AuthString keeps the password.
func (c *Credentials) String() string {
	if password, ok := c.Password(); ok && password != "" {
		return c.Username() + ":xxxxx"
	}
	return c.AuthString()
}

// Equal reports whether both credentials carry the same user
// name and password. The comparison is case sensitive. Nil
// credentials equal credentials with nothing set.
func (c *Credentials) Equal(other *Credentials) bool {
	password, set := c.Password()
	otherPassword, otherSet := other.Password()
	return c.Username() == other.Username() &&
		set == otherSet && password == otherPassword
}

// Package winunc connects and disconnects Windows network
// shares (UNC paths) by driving the operating system's NET USE
// command.
//
// A share is modeled as a Directory, optionally paired with
// Credentials, and managed through a Connection, which can
// bind the share to a local drive letter:
//
//	dir, _ := winunc.NewDirectory(`\\storage01\backups`, winunc.User("backup"))
//	drive, _ := winunc.NewDrive("Z:")
//	conn, _ := winunc.NewConnection(dir, winunc.MountPoint(drive))
//	if err := conn.Connect(); err != nil { ...
//
// Connecting tries the supplied credential variants from most
// to least specific and stops at the first one the system
// accepts. Status queries always ask the system; nothing is
// cached. Failed invocations come back as a *CommandError
// carrying the tool's combined output verbatim, which is where
// the tool explains itself.
//
// Only the command invocation itself is Windows specific. The
// value types and the status table parser in the netuse
// subpackage are portable and unit-testable anywhere.
package winunc

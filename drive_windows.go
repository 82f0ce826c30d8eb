package winunc

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// UsedDrives returns the drives the system currently knows,
// read from the logical drive bitmask.
func UsedDrives() ([]Drive, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, errors.Wrap(err, "query logical drives")
	}
	var drives []Drive
	for letter := byte('A'); letter <= 'Z'; letter++ {
		if mask&(1<<(letter-'A')) != 0 {
			drives = append(drives, Drive{letter: letter})
		}
	}
	return drives, nil
}

// AvailableDrive returns the highest lettered drive not in use,
// scanning from Z: downwards. When every letter is taken the
// error is ErrNoDrivesAvailable.
func AvailableDrive() (Drive, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return Drive{}, errors.Wrap(err, "query logical drives")
	}
	for letter := byte('Z'); letter >= 'A'; letter-- {
		if mask&(1<<(letter-'A')) == 0 {
			return Drive{letter: letter}, nil
		}
	}
	return Drive{}, ErrNoDrivesAvailable
}

// InUse reports whether the drive is currently known to the
// system.
func (d Drive) InUse() (bool, error) {
	if !d.Valid() {
		return false, ErrInvalidDrive
	}
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return false, errors.Wrap(err, "query logical drives")
	}
	return mask&(1<<(d.letter-'A')) != 0, nil
}

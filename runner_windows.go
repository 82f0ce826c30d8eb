package winunc

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// Pin the tool to the system directory instead of searching
// the path for it.
func init() {
	if dir, err := windows.GetSystemDirectory(); err == nil {
		netCommand = filepath.Join(dir, "net.exe")
	}
}

//go:build windows

package cmd

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// removeBackup deletes backupPath once a rewrite has succeeded.
//
// On Windows, antivirus/indexers can briefly hold a handle to the file; we
// retry for a short period and fall back to scheduling deletion at next
// reboot.
func removeBackup(backupPath string) error {
	if backupPath == "" {
		return nil
	}

	var lastErr error
	deadline := time.Now().Add(3 * time.Second)
	for {
		err := os.Remove(backupPath)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		lastErr = err
		if time.Now().After(deadline) {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}

	p, err := windows.UTF16PtrFromString(backupPath)
	if err != nil {
		return lastErr
	}
	if err := windows.MoveFileEx(p, nil, windows.MOVEFILE_DELAY_UNTIL_REBOOT); err != nil {
		return lastErr
	}
	return nil
}

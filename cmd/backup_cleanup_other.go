//go:build !windows

package cmd

import (
	"errors"
	"os"
)

// removeBackup deletes backupPath once a rewrite has succeeded. A backup
// that is already gone is fine.
func removeBackup(backupPath string) error {
	if backupPath == "" {
		return nil
	}
	if err := os.Remove(backupPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

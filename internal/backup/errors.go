package backup

import "errors"

// ErrBackupNotFound is returned when no backup exists on the remote.
var ErrBackupNotFound = errors.New("backup file not found on remote")

// ErrBackupDisabled is returned when no remote target is configured.
var ErrBackupDisabled = errors.New("remote backup is not configured")

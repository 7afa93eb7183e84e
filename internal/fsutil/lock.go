package fsutil

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ErrLocked reports that another process already holds the lock.
var ErrLocked = errors.New("fsutil: lock already held")

// FileLock is an advisory exclusive lock on a file, held until Release.
type FileLock struct {
	f *os.File
}

// AcquireLock takes a non-blocking exclusive flock on path, creating the
// file if needed. It returns ErrLocked if another process holds the lock.
func AcquireLock(path string) (*FileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("fsutil: open lock file %s: %w", path, err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("fsutil: flock %s: %w", path, ErrLocked)
		}
		return nil, fmt.Errorf("fsutil: flock %s: %w", path, err)
	}
	return &FileLock{f: f}, nil
}

// Release drops the lock. The lock file itself is left in place.
func (l *FileLock) Release() error {
	defer l.f.Close()
	return unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
}

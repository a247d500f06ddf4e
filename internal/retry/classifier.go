package retry

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// Messages of lock errors that are not exposed as errnos on every platform.
var transientFileMessages = []string{
	"being used by another process",
	"sharing violation",
	"resource temporarily unavailable",
	"device or resource busy",
	"text file busy",
}

// IsTransientFileError reports whether err is a short-lived file lock or
// interruption. Missing files and permission errors are never transient.
func IsTransientFileError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return false
	}

	for _, errno := range []syscall.Errno{syscall.EAGAIN, syscall.EBUSY, syscall.EINTR, syscall.ETXTBSY} {
		if errors.Is(err, errno) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientFileMessages {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

package bus

import (
	"fmt"

	"github.com/pkg/errors"
)

// EBADR is the errno the mapper daemon reports when a requested object or
// association does not exist.
const EBADR = 53

const (
	errNameUnknownObject   = "org.freedesktop.DBus.Error.UnknownObject"
	errNameUnknownProperty = "org.freedesktop.DBus.Error.UnknownProperty"
	errNameResourceMissing = "xyz.openbmc_project.Common.Error.ResourceNotFound"
)

// CallError is a failed remote call. Name carries the structured error name
// reported by the remote service, when one was reported; a transport-level
// failure has an empty Name. Errno is the POSIX errno the daemon attached, or
// zero.
type CallError struct {
	Name  string
	Msg   string
	Errno int
}

func (e *CallError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("bus call failed: %s", e.Msg)
	}
	return fmt.Sprintf("bus call failed: %s: %s", e.Name, e.Msg)
}

// ErrorName extracts the structured error name from err, or "" when err is not
// a CallError or carries no name.
func ErrorName(err error) string {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Name
	}
	return ""
}

// IsNoSuchObject reports whether err means the requested object, property, or
// association simply does not exist on the bus.
func IsNoSuchObject(err error) bool {
	var ce *CallError
	if !errors.As(err, &ce) {
		return false
	}
	if ce.Errno == EBADR {
		return true
	}
	switch ce.Name {
	case errNameUnknownObject, errNameUnknownProperty, errNameResourceMissing:
		return true
	}
	return false
}

package plan

import (
	"errors"
	"fmt"
	"strings"

	"uploadwire/internal/common"
)

var (
	// ErrUnregisteredModule is returned when a metadata path names a module
	// that is not installed.
	ErrUnregisteredModule = errors.New("module is not registered")
	// ErrCacheDirectory is returned when the metadata file cache directory
	// cannot be resolved or created.
	ErrCacheDirectory = errors.New("could not create cache directory")
	// ErrUnknownDriver is returned when a mapping's driver has no listener
	// template.
	ErrUnknownDriver = errors.New("unknown driver")
)

// ConfigError reports configuration that cannot be wired.
type ConfigError struct {
	// Err is one of the sentinel errors of this package.
	Err error
	// Subject is the module, directory or driver at fault.
	Subject string
	// Mapping is the mapping being resolved, if any.
	Mapping string
	// Available lists valid alternatives to Subject.
	Available []string
	// Suggestions are the closest matches among Available.
	Suggestions []string
	// Cause is the underlying failure, if any.
	Cause error
}

func (e *ConfigError) Error() string {
	var b strings.Builder

	if e.Mapping != "" {
		fmt.Fprintf(&b, "mapping %q: ", e.Mapping)
	}

	fmt.Fprintf(&b, "%v: %q", e.Err, e.Subject)

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}

	if !common.IsEmpty(e.Available) {
		fmt.Fprintf(&b, "; available: %s", strings.Join(e.Available, ", "))
	}

	if s, ok := common.First(e.Suggestions); ok {
		fmt.Fprintf(&b, " (did you mean %q?)", s)
	}

	return b.String()
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *ConfigError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.Cause}
}

// Package cstr validates strings that cross into C, where an embedded NUL
// would silently truncate them.
package cstr

import (
	"fmt"
	"strings"
)

// NulError reports a string containing a NUL byte.
type NulError struct {
	Input string
	Index int
}

func (e *NulError) Error() string {
	return fmt.Sprintf("nul byte found in provided data at position: %d", e.Index)
}

// Check returns a *NulError if s contains a NUL byte.
func Check(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &NulError{Input: s, Index: i}
	}
	return nil
}

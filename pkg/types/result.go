package types

import "fmt"

// ArchiveResult is the outcome of one archive or unarchive attempt.
// Transient, never persisted.
type ArchiveResult struct {
	Success bool
	Message string
}

// Succeed builds a successful result with a formatted message.
func Succeed(format string, args ...interface{}) ArchiveResult {
	return ArchiveResult{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Fail builds a failed result with a formatted message.
func Fail(format string, args ...interface{}) ArchiveResult {
	return ArchiveResult{Success: false, Message: fmt.Sprintf(format, args...)}
}

//go:build !dev
// +build !dev

package logger

// HandleError is a no-op outside dev builds; user-facing diagnostics are
// printed by the commands themselves.
func HandleError(err error) {
}

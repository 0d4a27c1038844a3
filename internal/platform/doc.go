// Package platform provides cross-platform filesystem operations used while
// rewriting a project: existence checks and a file move that falls back to
// copy-and-remove when a rename crosses filesystems. Permission changes are a
// no-op on Windows.
package platform

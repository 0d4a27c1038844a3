// Package cli implements the plugin-setup command tree using Cobra. One file
// per command; Execute returns the process exit code.
package cli

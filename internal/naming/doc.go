// Package naming derives the identifiers a plugin project is personalized
// with: the filesystem-safe package name, the PascalCase plugin class name,
// and the GitHub web URL used for the CI badge. All functions are pure.
package naming

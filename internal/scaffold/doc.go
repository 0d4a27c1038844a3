// Package scaffold lays down the pristine plugin template project from files
// embedded in the binary. It powers the "create" command; the generated
// project is what the setup initializer later personalizes.
package scaffold

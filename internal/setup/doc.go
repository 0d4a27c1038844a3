// Package setup personalizes a freshly cloned plugin template. An Initializer
// derives the package's safe name and plugin class name from package.json
// and rewrites, in order, the manifest, the source entry point, the browser
// and fixture configurations and the README, then relocates the CI workflow
// on first run. Every step is idempotent: a second run leaves all files
// byte-identical.
package setup

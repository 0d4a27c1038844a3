// Package config resolves the settings the initializer runs with: the
// relative paths of every file it rewrites, the template sentinels it compares
// against, and the dev-server URL template written into the browser configs.
// Values come from built-in defaults, an optional .plugin-setup.yaml in the
// project root, and PLUGIN_SETUP_* environment variables, in increasing
// order of precedence.
package config

// Package manifest reads, edits and validates the plugin's package.json.
// Edits go through an order-preserving JSON document so the rewritten file
// differs from the original only in the fields the initializer touches.
// Validation runs the manifest against an embedded JSON Schema and checks
// the version string with semver.
package manifest

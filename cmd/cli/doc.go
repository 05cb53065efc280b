// Package cli wires the gclone command hierarchy, configuration loading, and
// structured logging into a single application entrypoint.
package cli

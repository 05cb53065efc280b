// Package grab brings arbitrary sources into the organized workspace tree.
// Repository URLs are delegated to the clone flow; local directories are
// symlinked and local files copied into a derived <base>/<name> directory.
package grab

// Package opener launches an editor on a workspace entry. Projects are
// addressed either as <owner>/<name> shorthand under the workspace base or
// as a filesystem path, and editors start detached so the CLI returns
// immediately.
package opener

// Package clipboard reads text from the desktop clipboard.
//
// It tries a native clipboard binding first and then falls back through an
// ordered list of external command-line readers, using the first provider
// that succeeds with non-empty text. New providers can be appended without
// touching call sites.
package clipboard

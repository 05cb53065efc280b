// Package listing enumerates workspace entries under <base>/<owner>/<name>,
// newest first, with optional recency filtering and result limits.
package listing

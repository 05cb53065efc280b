// Package locator classifies textual repository locators.
//
// It recognizes SSH and HTTPS remote URL shapes, extracting the owner and
// repository name pair consumed by the workspace resolver. Classification is
// a pure function over the input text with no filesystem or network access.
package locator

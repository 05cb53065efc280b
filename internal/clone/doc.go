// Package clone materializes remote repositories inside the organized
// workspace tree. It classifies the provided locator text, resolves the
// canonical <base>/<owner>/<name> directory, and runs git clone unless the
// target already holds content.
package clone

// Package workspace resolves and prepares target directories inside the
// organized workspace tree.
//
// The tree is two levels deep: <base>/<owner>/<name> for cloned repositories
// and <base>/<name> for grabbed local paths. Resolution is idempotent and
// flows through a FileSystem abstraction so services remain testable.
package workspace

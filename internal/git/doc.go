// Package git inspects the local repository holding the documentation site.
//
// It derives the "owner/repo" identifier the theme uses for edit links and
// repository buttons from the repository's origin remote.
package git

// Package libdiff reports differences between OBO documents, as text line
// diffs or as stanza and tag level differences.
package libdiff

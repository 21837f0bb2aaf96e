// Package socialnet provides an in-memory social network: account
// registration and connectivity, a directed follow graph with observer-style
// notification fan-out, and content publication (text, image reference, sale
// listing) with likes and comments.
//
// It exposes a single Service interface constructed with functional options.
// All state lives behind the Repository interface (an in-memory
// implementation is provided under repo/memory); event reporting, image
// asset resolution, and display are pluggable collaborators with no-op
// defaults.
//
// Every mutating operation runs its preconditions first and leaves state
// untouched on failure. Errors are sentinel values (ErrNotConnected,
// ErrDuplicateAccount, ...) wrapped in AccountError or PostError for
// context; match them with errors.Is.
package socialnet

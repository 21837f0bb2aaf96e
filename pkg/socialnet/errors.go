package socialnet

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error kinds
var (
	// ErrDuplicateAccount indicates the username is already registered,
	// connected or not.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredential indicates a password outside the allowed length
	// bounds.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrAlreadyConnected indicates a connect attempt for an account that is
	// already connected with matching credentials.
	ErrAlreadyConnected = errors.New("account already connected")

	// ErrUnknownAccount indicates credentials or a username matching no
	// account.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrAlreadyDisconnected indicates a disconnect attempt for an account
	// that is already disconnected.
	ErrAlreadyDisconnected = errors.New("account already disconnected")

	// ErrNotConnected indicates a mutating action attempted by a
	// disconnected actor.
	ErrNotConnected = errors.New("account not connected")

	// ErrSelfFollow indicates a follow or unfollow where actor and target
	// are the same account.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrAlreadyFollowing indicates a follow of a target that is already
	// followed.
	ErrAlreadyFollowing = errors.New("already following")

	// ErrNotFollowing indicates an unfollow of a target that is not
	// currently followed.
	ErrNotFollowing = errors.New("not following")

	// ErrBadCredential indicates a sale mutation with a password that does
	// not match the author's.
	ErrBadCredential = errors.New("password does not match")

	// ErrUnavailable indicates a discount attempted on a sold item.
	ErrUnavailable = errors.New("item no longer available")

	// ErrPostNotFound indicates a post was not found.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidRequest indicates a structurally invalid request (missing
	// fields, unknown post kind, negative price).
	ErrInvalidRequest = errors.New("invalid request")
)

// AccountError represents an error related to account operations
type AccountError struct {
	Username string
	Op       string
	Err      error
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("account operation %s failed for %q: %v", e.Op, e.Username, e.Err)
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

// PostError represents an error related to post operations
type PostError struct {
	PostID uuid.UUID
	Op     string
	Err    error
}

func (e *PostError) Error() string {
	return fmt.Sprintf("post operation %s failed for post %s: %v", e.Op, e.PostID, e.Err)
}

func (e *PostError) Unwrap() error {
	return e.Err
}

package socialnet

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// The validation layer holds no state of its own: every check reads the
// entities it is given and returns a specific error kind, or nil.

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// checkRegister validates the shape of a registration request. A password
// outside the [4,8] length bounds maps to ErrInvalidCredential; any other
// structural failure maps to ErrInvalidRequest.
func (s *service) checkRegister(req RegisterRequest) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Password" && (fe.Tag() == "min" || fe.Tag() == "max") {
					return fmt.Errorf("%w: password length must be between 4 and 8", ErrInvalidCredential)
				}
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// checkRequest validates any other request DTO against its struct tags.
func (s *service) checkRequest(req interface{}) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// checkConnected requires the account to be in the connected partition.
func checkConnected(account *Account) error {
	if !account.Connected {
		return ErrNotConnected
	}
	return nil
}

// checkDistinct rejects self-referencing follow and unfollow.
func checkDistinct(actor, target string) error {
	if actor == target {
		return ErrSelfFollow
	}
	return nil
}

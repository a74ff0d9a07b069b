package kernel

import (
	"fmt"
	"strconv"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

const (
	// TokenMin is the smallest valid order token value.
	TokenMin = 100
	// TokenMax is the largest valid order token value.
	TokenMax = 999
	// TokenSpaceSize is the number of distinct tokens that can be live at once.
	TokenSpaceSize = TokenMax - TokenMin + 1
)

// ErrTokenIsNotConstructed is returned when attempting to use an improperly
// initialized Token. Tokens must be created using NewToken or TokenFromString.
var ErrTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"token must be created via NewToken or TokenFromString constructors")

// Token is the short customer-facing order reference shared by every line of
// one order group. It is a 3-digit numeric code in [TokenMin, TokenMax],
// unique among currently stored orders at allocation time; a value may be
// reused once no stored order holds it any more.
//
// Token is an immutable value object. The zero value is invalid and fails
// validation - use the constructors to create instances.
//
// Example:
//
//	token, err := kernel.NewToken(417)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(token.String()) // Output: 417
type Token struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewToken creates a Token from its numeric value.
// The value must be within [TokenMin, TokenMax].
func NewToken(value int) (Token, error) {
	if value < TokenMin || value > TokenMax {
		return Token{}, errs.NewValueIsOutOfRangeError("token", value, TokenMin, TokenMax)
	}

	return Token{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// TokenFromString parses a Token from its 3-digit string form, as stored in
// the database and as typed by customers.
func TokenFromString(s string) (Token, error) {
	value, err := strconv.Atoi(s)
	if err != nil {
		return Token{}, errs.NewValueIsInvalidErrorWithCause("token", fmt.Errorf("%q is not numeric", s))
	}
	return NewToken(value)
}

// Validate checks if the Token was properly constructed using a constructor.
// The zero value of Token is invalid and will fail this validation.
func (t Token) Validate() error {
	return t.guard.Validate(ErrTokenIsNotConstructed)
}

// Int returns the numeric token value.
func (t Token) Int() int {
	return t.value
}

// String returns the 3-digit string form of the token.
func (t Token) String() string {
	return strconv.Itoa(t.value)
}

// IsEqual compares two tokens by value.
func (t Token) IsEqual(other Token) bool {
	return t.value == other.value
}

package disarium

import "github.com/zeebo/errs"

// Error wraps every error returned by this package.
var Error = errs.Class("disarium")

// Error categories. Use Has to test for one, e.g. TooLargeError.Has(err).
var (
	// TooLargeError means a value does not fit the fixed digit width.
	TooLargeError = errs.Class("number too large for the fixed digit width")

	// ProfileError means a tuning profile failed validation.
	ProfileError = errs.Class("invalid profile")

	// DigitCountError means a digit count outside 0..MaxDigits was requested.
	DigitCountError = errs.Class("invalid digit count")
)

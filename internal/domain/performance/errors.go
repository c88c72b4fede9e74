package performance

import "errors"

var (
	ErrReviewNotFound       = errors.New("performance review not found")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrReviewerRoleRequired = errors.New("only hr or manager may write reviews")
	ErrNotReviewOwner       = errors.New("only the reviewer or hr may update this review")
	ErrOutOfScope           = errors.New("review is outside the caller's visibility")
)

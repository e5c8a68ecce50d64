package errs

import "errors"

// Category sentinels. Specific errors carry one of these in their chain so the
// request layer only needs the category to pick a status code.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrForbidden         = errors.New("forbidden")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrNothingToRedo     = errors.New("nothing to redo")
	ErrConflict          = errors.New("conflict")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.category }

// Categorize declares a specific sentinel that also matches category.
func Categorize(msg string, category error) error {
	return &categorized{msg: msg, category: category}
}

// PublicMessage returns the message of the outermost categorized sentinel in err's chain,
// or fallback when there is none.
func PublicMessage(err error, fallback string) string {
	var c *categorized
	if errors.As(err, &c) {
		return c.msg
	}
	return fallback
}

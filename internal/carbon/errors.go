package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrNoProducts is returned by Compare for an empty product list.
	ErrNoProducts = constError("no products to compare")

	// ErrNegativeValue is returned when an equivalency is requested for a
	// negative footprint.
	ErrNegativeValue = constError("negative carbon value")

	// ErrInvalidValue is returned for NaN or infinite footprints.
	ErrInvalidValue = constError("invalid carbon value")
)

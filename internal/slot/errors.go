package slot

// Kind classifies a validation failure.
type Kind int

const (
	// KindInvalidArgument covers absent or malformed input.
	KindInvalidArgument Kind = iota + 1
	// KindOutOfRange covers values outside the valid domain.
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindOutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// Error is returned by AvailablePeriods and Calculate when input fails validation.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error of the same kind, so callers can
// match with errors.Is(err, ErrInvalidArgument).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrOutOfRange      = &Error{Kind: KindOutOfRange}
)

func invalidArgument(msg string) error {
	return &Error{Kind: KindInvalidArgument, Msg: msg}
}

func outOfRange(msg string) error {
	return &Error{Kind: KindOutOfRange, Msg: msg}
}

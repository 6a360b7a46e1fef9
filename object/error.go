package object

// ErrorValue is an error-shaped record: message plus optional name and
// stack trace, encoded as the closed error node kind rather than as a
// generic object so peers without a matching class registration can
// still receive it.
type ErrorValue struct {
	Message string
	Name    string
	Stack   string
}

func (*ErrorValue) isValue() {}

// NewErrorValue constructs an ErrorValue with the given message.
func NewErrorValue(message string) *ErrorValue {
	return &ErrorValue{Message: message}
}

func (e *ErrorValue) Error() string {
	if e.Name != "" {
		return e.Name + ": " + e.Message
	}
	return e.Message
}

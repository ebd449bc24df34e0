package sim

import "fmt"

// InvalidInputError reports an initial cup order that is not a permutation of
// 1..k: a duplicate, a gap, a non-positive value or a non-integer token.
type InvalidInputError struct {
	Label    Label  // offending label, 0 when the token was not an integer
	Position int    // index into the input order, -1 when not tied to a position
	Token    string // raw token for parse failures
	Reason   string
}

func (e *InvalidInputError) Error() string {
	switch {
	case e.Token != "":
		return fmt.Sprintf("invalid cup order: token %q at position %d: %s", e.Token, e.Position, e.Reason)
	case e.Label == 0 && e.Position < 0:
		return "invalid cup order: " + e.Reason
	case e.Position >= 0:
		return fmt.Sprintf("invalid cup order: label %d at position %d: %s", e.Label, e.Position, e.Reason)
	default:
		return fmt.Sprintf("invalid cup order: label %d: %s", e.Label, e.Reason)
	}
}

// ConfigurationError reports a simulation setting that cannot be honored,
// such as a target size below the input length or a negative round count.
type ConfigurationError struct {
	Field  string // "size", "rounds" or "progress"
	Value  int64
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%d: %s", e.Field, e.Value, e.Reason)
}

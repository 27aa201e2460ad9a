package confirm

import "fmt"

// Kind categorizes a confirmation failure.
type Kind int

const (
	// KindConfig means the variable could not be resolved at all:
	// empty name, or unset with no suffix fallback and no default.
	KindConfig Kind = iota

	// KindValidation means the variable resolved but a predicate
	// (possibly negated) did not hold.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a failed confirmation. Name is the upper-cased variable
// name, Value its resolved value (empty for config failures), and Cond
// the violated condition in natural language.
type Error struct {
	Kind  Kind
	Name  string
	Value string
	Cond  string
}

func (e *Error) Error() string {
	if e.Kind == KindConfig {
		// Resolution errors already name the variable.
		return e.Cond
	}
	return fmt.Sprintf("environment variable %s: value %q %s", e.Name, e.Value, e.Cond)
}

package confirm

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

func upperName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Not marks the next predicate as negated. It evaluates nothing itself;
// a second Not before any predicate toggles back.
func (c Chain) Not() Chain {
	c.negate = !c.negate
	return c
}

// Is confirms the value equals compare. Both operands are compared
// numerically when both parse as numbers, otherwise as strings.
func (c Chain) Is(compare any) Chain {
	return c.check(looseEqual(c.value, compare),
		fmt.Sprintf("must equal %v", compare),
		fmt.Sprintf("must not equal %v", compare))
}

// IsEQ is an alias for Is.
func (c Chain) IsEQ(compare any) Chain {
	return c.Is(compare)
}

// IsDefined confirms the variable resolved to a value. Resolution
// already guarantees this, so it only fails when negated.
func (c Chain) IsDefined() Chain {
	return c.check(true, "must be defined", "must not be defined")
}

// IsGT confirms the value is strictly greater than compare, using the
// numeric-if-both-numeric, otherwise lexical, ordering rule.
func (c Chain) IsGT(compare any) Chain {
	return c.check(compareOrd(c.value, compare) > 0,
		fmt.Sprintf("must be greater than %v", compare),
		fmt.Sprintf("must not be greater than %v", compare))
}

// IsGE confirms the value is greater than or equal to compare.
func (c Chain) IsGE(compare any) Chain {
	return c.check(compareOrd(c.value, compare) >= 0,
		fmt.Sprintf("must be greater than or equal to %v", compare),
		fmt.Sprintf("must not be greater than or equal to %v", compare))
}

// IsLT confirms the value is strictly less than compare.
func (c Chain) IsLT(compare any) Chain {
	return c.check(compareOrd(c.value, compare) < 0,
		fmt.Sprintf("must be less than %v", compare),
		fmt.Sprintf("must not be less than %v", compare))
}

// IsLE confirms the value is less than or equal to compare.
func (c Chain) IsLE(compare any) Chain {
	return c.check(compareOrd(c.value, compare) <= 0,
		fmt.Sprintf("must be less than or equal to %v", compare),
		fmt.Sprintf("must not be less than or equal to %v", compare))
}

// HasLength confirms the value length is within [min, max], inclusive.
func (c Chain) HasLength(min, max int) Chain {
	l := len(c.value)
	return c.check(l >= min && l <= max,
		fmt.Sprintf("must have a length between %d and %d, got %d", min, max, l),
		fmt.Sprintf("must not have a length between %d and %d, got %d", min, max, l))
}

// Contains confirms the value contains substring.
func (c Chain) Contains(substring string) Chain {
	return c.check(strings.Contains(c.value, substring),
		fmt.Sprintf("must contain %q", substring),
		fmt.Sprintf("must not contain %q", substring))
}

// Matches confirms the value matches the regular expression pattern.
// A pattern that does not compile fails the chain regardless of
// negation.
func (c Chain) Matches(pattern string) Chain {
	if c.err != nil {
		return c
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		c.negate = false
		c.err = &Error{
			Kind:  KindValidation,
			Name:  c.name,
			Value: c.value,
			Cond:  fmt.Sprintf("cannot be matched, pattern %q does not compile: %v", pattern, err),
		}
		if c.must {
			FatalFn(c.err)
		}
		return c
	}
	return c.check(re.MatchString(c.value),
		fmt.Sprintf("must match %q", pattern),
		fmt.Sprintf("must not match %q", pattern))
}

// IsIn confirms the value equals one of the given values, using the
// same coercion rule as Is. An empty list never matches.
func (c Chain) IsIn(values ...string) Chain {
	found := false
	for _, v := range values {
		if looseEqual(c.value, v) {
			found = true
			break
		}
	}
	return c.check(found,
		fmt.Sprintf("must be one of [%s]", strings.Join(values, ", ")),
		fmt.Sprintf("must not be one of [%s]", strings.Join(values, ", ")))
}

// IsPath resolves the value to an absolute path, writes the absolute
// form back to the table, and confirms the path exists. With force, a
// missing path is created as a single directory level (parents are not
// created). Negated, IsPath confirms the path does not exist and force
// is ignored.
func (c Chain) IsPath(force bool) Chain {
	if c.err != nil {
		return c
	}
	abs, err := filepath.Abs(c.value)
	if err != nil {
		c.negate = false
		c.err = &Error{
			Kind:  KindValidation,
			Name:  c.name,
			Value: c.value,
			Cond:  fmt.Sprintf("cannot be resolved to an absolute path: %v", err),
		}
		if c.must {
			FatalFn(c.err)
		}
		return c
	}

	c.value = abs
	c.table.Set(c.name, abs)

	_, statErr := os.Stat(abs)
	exists := statErr == nil
	if !exists && force && !c.negate {
		if mkErr := os.Mkdir(abs, 0o755); mkErr == nil {
			exists = true
		}
	}

	return c.check(exists,
		"must be an existing path",
		"must not be an existing path")
}

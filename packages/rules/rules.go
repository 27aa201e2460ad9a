package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/envconfirm/packages/confirm"
)

// Op identifies the predicate a rule applies.
type Op int

const (
	OpEQ Op = iota
	OpGT
	OpGE
	OpLT
	OpLE
	OpLen
	OpContains
	OpMatches
	OpIn
	OpDefined
	OpPath
	OpPathCreate
)

var opNames = map[Op]string{
	OpEQ:         "==",
	OpGT:         ">",
	OpGE:         ">=",
	OpLT:         "<",
	OpLE:         "<=",
	OpLen:        "len",
	OpContains:   "contains",
	OpMatches:    "matches",
	OpIn:         "in",
	OpDefined:    "defined",
	OpPath:       "path",
	OpPathCreate: "path+",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Rule is one parsed confirmation: a variable (with optional default),
// an operator, and its arguments. The textual form is
//
//	NAME[=default] [!]OP [ARG[,ARG...]]
//
// for example "SERVER_PORT >= 1000", "MODE in dev,test,prod",
// "CACHE_DIR=./cache path+" or "DEBUG !contains prod". "!=" is
// shorthand for "!==".
type Rule struct {
	Raw        string
	Name       string
	Default    string
	HasDefault bool
	Negate     bool
	Op         Op
	Args       []string

	// Length bounds, set for OpLen only.
	Min, Max int
}

// Parse turns the textual form into a Rule.
func Parse(raw string) (*Rule, error) {
	r := &Rule{Raw: strings.TrimSpace(raw)}
	if r.Raw == "" {
		return nil, fmt.Errorf("empty rule")
	}

	nameSpec, rest := splitToken(r.Raw)
	opTok, arg := splitToken(rest)
	if opTok == "" {
		return nil, fmt.Errorf("rule %q: missing operator", r.Raw)
	}

	r.Name, r.Default, r.HasDefault = strings.Cut(nameSpec, "=")
	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("rule %q: missing variable name", r.Raw)
	}

	if opTok == "!=" {
		r.Negate = true
		opTok = "=="
	} else if strings.HasPrefix(opTok, "!") {
		r.Negate = true
		opTok = opTok[1:]
	}

	op, ok := parseOp(opTok)
	if !ok {
		return nil, fmt.Errorf("rule %q: unknown operator %q", r.Raw, opTok)
	}
	r.Op = op

	return r, r.parseArgs(arg)
}

// ParseAll parses every rule, stopping at the first bad one.
func ParseAll(raws []string) ([]*Rule, error) {
	parsed := make([]*Rule, 0, len(raws))
	for _, raw := range raws {
		r, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, r)
	}
	return parsed, nil
}

// Apply runs the rule as one confirmation chain and returns its result.
func (r *Rule) Apply(cf confirm.Confirmer) error {
	var c confirm.Chain
	if r.HasDefault {
		c = cf.Confirm(r.Name, r.Default)
	} else {
		c = cf.Confirm(r.Name)
	}
	if r.Negate {
		c = c.Not()
	}

	switch r.Op {
	case OpEQ:
		c = c.IsEQ(r.Args[0])
	case OpGT:
		c = c.IsGT(r.Args[0])
	case OpGE:
		c = c.IsGE(r.Args[0])
	case OpLT:
		c = c.IsLT(r.Args[0])
	case OpLE:
		c = c.IsLE(r.Args[0])
	case OpLen:
		c = c.HasLength(r.Min, r.Max)
	case OpContains:
		c = c.Contains(r.Args[0])
	case OpMatches:
		c = c.Matches(r.Args[0])
	case OpIn:
		c = c.IsIn(r.Args...)
	case OpDefined:
		c = c.IsDefined()
	case OpPath:
		c = c.IsPath(false)
	case OpPathCreate:
		c = c.IsPath(true)
	}

	return c.Err()
}

func parseOp(tok string) (Op, bool) {
	for op, name := range opNames {
		if name == tok {
			return op, true
		}
	}
	return 0, false
}

func (r *Rule) parseArgs(arg string) error {
	switch r.Op {
	case OpDefined, OpPath, OpPathCreate:
		if arg != "" {
			return fmt.Errorf("rule %q: operator %s takes no argument", r.Raw, r.Op)
		}
	case OpLen:
		lo, hi, ok := strings.Cut(arg, ",")
		if !ok {
			return fmt.Errorf("rule %q: len needs min,max", r.Raw)
		}
		var err error
		if r.Min, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
			return fmt.Errorf("rule %q: bad min %q", r.Raw, lo)
		}
		if r.Max, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
			return fmt.Errorf("rule %q: bad max %q", r.Raw, hi)
		}
	case OpIn:
		if arg == "" {
			return fmt.Errorf("rule %q: in needs at least one value", r.Raw)
		}
		for _, v := range strings.Split(arg, ",") {
			r.Args = append(r.Args, strings.TrimSpace(v))
		}
	default:
		if arg == "" {
			return fmt.Errorf("rule %q: operator %s needs an argument", r.Raw, r.Op)
		}
		r.Args = []string{arg}
	}
	return nil
}

// splitToken returns the first whitespace-delimited token and the
// trimmed remainder. The remainder keeps internal whitespace so regex
// arguments survive intact.
func splitToken(s string) (tok, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

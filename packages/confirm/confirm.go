package confirm

import (
	"github.com/abdul-hamid-achik/envconfirm/packages/env"
	"github.com/sirupsen/logrus"
)

// FatalFn is called with the failure message when a chain started by
// MustConfirm (or a Confirmer with Must set) fails. It is expected to
// terminate the process; tests override it to capture instead.
var FatalFn = func(err error) {
	logrus.Fatal(err)
}

// Confirmer creates confirmation chains against one environment table.
// The zero value is not useful; leave fields empty to get the process
// environment and the default mode variable via Confirm/MustConfirm.
type Confirmer struct {
	Table   env.Table
	ModeVar string

	// Must makes a failing chain call FatalFn instead of only
	// recording the error.
	Must bool
}

// Chain carries the state of one confirmation: the resolved name and
// value, the pending negation, and the first failure. Every method
// returns a fresh Chain value; nothing is shared between calls.
type Chain struct {
	table  env.Table
	name   string
	value  string
	negate bool
	must   bool
	err    *Error
}

// Confirm resolves name against the process environment and returns a
// chain for predicate calls. The optional second argument is a default
// written into the environment when the variable is unset or empty.
func Confirm(name string, def ...string) Chain {
	return Confirmer{}.Confirm(name, def...)
}

// MustConfirm is Confirm with the fail-fast policy: the first failing
// predicate (or a resolution failure) calls FatalFn.
func MustConfirm(name string, def ...string) Chain {
	return Confirmer{Must: true}.Confirm(name, def...)
}

// Confirm resolves name against the confirmer's table and returns a
// chain for predicate calls.
func (cf Confirmer) Confirm(name string, def ...string) Chain {
	table := cf.Table
	if table == nil {
		table = env.OS()
	}

	c := Chain{table: table, must: cf.Must}

	value, err := env.Resolve(table, cf.ModeVar, name, def...)
	if err != nil {
		return c.failConfig(upperName(name), err.Error())
	}
	c.name = upperName(name)
	c.value = value
	return c
}

// Value returns the resolved value. It is empty only when resolution
// itself failed.
func (c Chain) Value() string { return c.value }

// Err returns the first failure recorded on the chain, or nil.
func (c Chain) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// Ok reports whether every predicate so far held.
func (c Chain) Ok() bool { return c.err == nil }

// check finalizes one predicate evaluation: apply the pending negation,
// record the first failure with the appropriate phrasing, and clear the
// negation for the next call.
func (c Chain) check(result bool, cond, negCond string) Chain {
	if c.err != nil {
		return c
	}
	negated := c.negate
	c.negate = false
	if negated {
		result = !result
	}
	if result {
		return c
	}
	msg := cond
	if negated {
		msg = negCond
	}
	c.err = &Error{Kind: KindValidation, Name: c.name, Value: c.value, Cond: msg}
	if c.must {
		FatalFn(c.err)
	}
	return c
}

func (c Chain) failConfig(name, cond string) Chain {
	c.err = &Error{Kind: KindConfig, Name: name, Cond: cond}
	if c.must {
		FatalFn(c.err)
	}
	return c
}

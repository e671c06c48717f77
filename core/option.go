package core

import "github.com/chriso345/argspec/internal/common"

// Option declares one recognized option. It is plain data: nothing is
// validated at construction, and a Defaults slice whose length differs from
// InputCount is simply never applied.
type Option struct {
	// Name is the key the option is recorded under in a Result.
	Name string
	// Description is display-only text.
	Description string
	// Markers are the literal tokens that identify this option.
	Markers []string
	// InputCount is the number of tokens consumed after a marker. Zero makes
	// the option a presence-only flag.
	InputCount int
	// Required options must be matched or filled from Defaults.
	Required bool
	// Defaults are installed for a required, absent option when
	// len(Defaults) == InputCount.
	Defaults []string
}

// Matches reports whether token is one of the option's markers.
func (o Option) Matches(token string, ignoreCase bool) bool {
	want := common.Fold(token, ignoreCase)
	for _, m := range o.Markers {
		if common.Fold(m, ignoreCase) == want {
			return true
		}
	}
	return false
}

// IsFlag reports whether the option consumes no follow-on tokens.
func (o Option) IsFlag() bool { return o.arity() == 0 }

// HasUsableDefault reports whether Defaults can stand in for a missing match.
func (o Option) HasUsableDefault() bool { return len(o.Defaults) == o.InputCount }

func (o Option) arity() int {
	if o.InputCount < 0 {
		return 0
	}
	return o.InputCount
}

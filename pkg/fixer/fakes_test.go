package fixer_test

import (
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// fakeFixer is a fixer assembled from functions.
type fakeFixer struct {
	fixer.BaseFixer
	candidate func(*tokens.Stream) bool
	fix       func(*tokens.Stream) error
	calls     int
}

func newFake(name string, priority int, fix func(*tokens.Stream) error) *fakeFixer {
	return &fakeFixer{
		BaseFixer: fixer.NewBaseFixer(name, "fake "+name, priority, false),
		fix:       fix,
	}
}

func (f *fakeFixer) IsCandidate(s *tokens.Stream) bool {
	if f.candidate == nil {
		return true
	}
	return f.candidate(s)
}

func (f *fakeFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	f.calls++
	return f.fix(s)
}

// renameVar returns a fix function that renames every variable from -> to.
func renameVar(from, to string) func(*tokens.Stream) error {
	return func(s *tokens.Stream) error {
		for _, i := range s.FindKind(token.Variable) {
			if s.At(i).Content == from {
				s.SetContent(i, to)
			}
		}
		return nil
	}
}

// riskyFake is a risky fixer that is disabled unless enabled explicitly.
type riskyFake struct {
	fakeFixer
}

func newRiskyFake(name string) *riskyFake {
	return &riskyFake{fakeFixer{
		BaseFixer: fixer.NewBaseFixer(name, "risky "+name, 0, true),
		fix:       func(*tokens.Stream) error { return nil },
	}}
}

func (f *riskyFake) DefaultEnabled() bool { return false }

// optionFake is a configurable fixer that renames $old to the "to" option.
type optionFake struct {
	fixer.BaseFixer
	fixer.Configurator
}

func newOptionFake() *optionFake {
	return &optionFake{
		BaseFixer: fixer.NewBaseFixer("rename_old", "rename $old", 0, false),
		Configurator: fixer.NewConfigurator(fixer.NewOptionSet("rename_old",
			fixer.Option{Name: "to", Type: fixer.TypeString, Default: "$new"},
		)),
	}
}

func (f *optionFake) IsCandidate(s *tokens.Stream) bool { return s.IsKindFound(token.Variable) }

func (f *optionFake) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	return renameVar("$old", f.Values().String("to"))(s)
}

func fakeRegistry() *fixer.Registry {
	reg := fixer.NewRegistry()
	reg.Register(func() fixer.Fixer { return newOptionFake() })
	reg.Register(func() fixer.Fixer { return newRiskyFake("dangerous") })
	reg.Register(func() fixer.Fixer { return newFake("b_to_c", 5, renameVar("$b", "$c")) })
	reg.RegisterAlias("old_name", "rename_old")
	return reg
}

// Package params declares the parameters each command accepts and checks
// invocations against them before any generator runs.
package params

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/pyrepo/cli/internal/config"
	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/output"
	"github.com/pyrepo/cli/internal/prompt"
)

// Kind is the value type of a parameter.
type Kind int

const (
	// KindString parameters are missing when empty.
	KindString Kind = iota

	// KindBool parameters always carry a value and are never missing.
	KindBool
)

// Param describes one command parameter.
type Param struct {
	// Name is the long flag name.
	Name string

	// Short is the one-letter flag, if any.
	Short string

	Kind Kind

	// Required marks a string parameter that must be supplied.
	Required bool

	// RequiredWhen names a bool parameter that, when true, makes this one required.
	RequiredWhen string

	// Prompt is the question asked by the configuration commands.
	Prompt string

	// Usage is the flag help text.
	Usage string
}

// Key returns the configuration record key for the parameter.
func (p Param) Key() string {
	return strings.ReplaceAll(p.Name, "-", "_")
}

// Schema is the ordered parameter list of one command.
type Schema struct {
	// Command is the command path shown in hints, e.g. "easy flask".
	Command string

	Params []Param
}

// Values holds the parameters of one invocation.
type Values map[string]any

// String returns a string parameter, or "" when unset.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns a bool parameter, or false when unset.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Lookup returns the parameter with the given name.
func (s Schema) Lookup(name string) (Param, bool) {
	return lo.Find(s.Params, func(p Param) bool { return p.Name == name })
}

// Strings returns the names of the string parameters in schema order.
func (s Schema) Strings() []string {
	return lo.FilterMap(s.Params, func(p Param, _ int) (string, bool) {
		return p.Name, p.Kind == KindString
	})
}

// AddFlags registers one flag per parameter.
func (s Schema) AddFlags(fs *pflag.FlagSet) {
	for _, p := range s.Params {
		switch p.Kind {
		case KindString:
			fs.StringP(p.Name, p.Short, "", p.Usage)
		case KindBool:
			fs.BoolP(p.Name, p.Short, false, p.Usage)
		}
	}
}

// FromFlags reads every parameter from a parsed flag set.
func (s Schema) FromFlags(fs *pflag.FlagSet) (Values, error) {
	v := make(Values, len(s.Params))
	for _, p := range s.Params {
		var err error
		switch p.Kind {
		case KindString:
			v[p.Name], err = fs.GetString(p.Name)
		case KindBool:
			v[p.Name], err = fs.GetBool(p.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading --%s: %w", p.Name, err)
		}
	}
	return v, nil
}

// Missing returns the required string parameters that have no value, in schema order.
func (s Schema) Missing(v Values) []string {
	var missing []string
	for _, p := range s.Params {
		if p.Kind != KindString || strings.TrimSpace(v.String(p.Name)) != "" {
			continue
		}
		if p.Required || (p.RequiredWhen != "" && v.Bool(p.RequiredWhen)) {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// Validate fails with ErrMissingParameter when any required string is missing.
func (s Schema) Validate(v Values) error {
	missing := s.Missing(v)
	if len(missing) == 0 {
		return nil
	}
	output.Debug("missing parameters", "command", s.Command, "missing", missing)
	return oerrors.NewMissingParameterError(s.Command, missing)
}

// FillFromRecord copies record values into string parameters that have no
// value and returns the names it filled.
func (s Schema) FillFromRecord(v Values, rec *config.Record) []string {
	var filled []string
	for _, p := range s.Params {
		if p.Kind != KindString || v.String(p.Name) != "" {
			continue
		}
		if stored, ok := rec.Get(p.Key()); ok && stored != "" {
			v[p.Name] = stored
			filled = append(filled, p.Name)
		}
	}
	return filled
}

// Prompt asks for every string parameter without a value and every bool
// parameter whose flag was not set on the command line.
func (s Schema) Prompt(v Values, fs *pflag.FlagSet, p prompt.Prompter) error {
	for _, param := range s.Params {
		if param.Prompt == "" {
			continue
		}
		switch param.Kind {
		case KindString:
			if v.String(param.Name) != "" {
				continue
			}
			answer, err := p.Input(param.Prompt)
			if err != nil {
				return err
			}
			v[param.Name] = answer
		case KindBool:
			if fs.Changed(param.Name) {
				continue
			}
			answer, err := p.Confirm(param.Prompt, v.Bool(param.Name))
			if err != nil {
				return err
			}
			v[param.Name] = answer
		}
	}
	return nil
}

// Entries converts values to record entries in schema order.
func (s Schema) Entries(v Values) []config.Entry {
	return lo.Map(s.Params, func(p Param, _ int) config.Entry {
		return config.Entry{Key: p.Key(), Value: v[p.Name]}
	})
}

// NormalizeAliases maps accepted alternative flag names to their canonical name.
func NormalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "describe":
		name = Description.Name
	case "maintainer":
		name = Maintainer.Name
	}
	return pflag.NormalizedName(name)
}

// This file translates the HCL schema structs into the format-agnostic
// definition model of the runtime package.

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/jacobrgreen/cliutil/runtime"
)

func translateApplication(s *applicationSchema) (*runtime.Definition, error) {
	def := &runtime.Definition{
		Name:           s.Name,
		Description:    s.Description,
		Version:        s.Version,
		Run:            s.Run,
		DisableHelp:    s.DisableHelp,
		DisableVersion: s.DisableVersion,
	}

	for _, f := range s.Flags {
		def.Flags = append(def.Flags, translateFlag(f))
	}
	for _, p := range s.Parameters {
		param, err := translateParameter(p)
		if err != nil {
			return nil, fmt.Errorf("in application '%s': %w", s.Name, err)
		}
		def.Parameters = append(def.Parameters, param)
	}
	for _, a := range s.Arguments {
		def.Arguments = append(def.Arguments, translateArgument(a))
	}
	for _, c := range s.Commands {
		cmd, err := translateCommand(c)
		if err != nil {
			return nil, fmt.Errorf("in application '%s': %w", s.Name, err)
		}
		def.Commands = append(def.Commands, cmd)
	}

	return def, nil
}

func translateCommand(s *commandSchema) (*runtime.CommandDefinition, error) {
	def := &runtime.CommandDefinition{
		Name:        s.Name,
		Aliases:     s.Aliases,
		Description: s.Description,
		Run:         s.Run,
	}

	for _, f := range s.Flags {
		def.Flags = append(def.Flags, translateFlag(f))
	}
	for _, p := range s.Parameters {
		param, err := translateParameter(p)
		if err != nil {
			return nil, fmt.Errorf("in command '%s': %w", s.Name, err)
		}
		def.Parameters = append(def.Parameters, param)
	}
	for _, a := range s.Arguments {
		def.Arguments = append(def.Arguments, translateArgument(a))
	}
	for _, c := range s.Commands {
		cmd, err := translateCommand(c)
		if err != nil {
			return nil, fmt.Errorf("in command '%s': %w", s.Name, err)
		}
		def.Commands = append(def.Commands, cmd)
	}

	return def, nil
}

func translateFlag(s *flagSchema) *runtime.FlagDefinition {
	return &runtime.FlagDefinition{
		Short:       s.Short,
		Long:        s.Long,
		Description: s.Description,
		EnvVar:      s.EnvVar,
	}
}

func translateParameter(s *parameterSchema) (*runtime.ParameterDefinition, error) {
	typeName, err := typeExprToName(s.Type)
	if err != nil {
		return nil, fmt.Errorf("parameter '%s': %w", s.Long, err)
	}

	def := &runtime.ParameterDefinition{
		Short:       s.Short,
		Long:        s.Long,
		Description: s.Description,
		Placeholder: s.Placeholder,
		Required:    s.Required,
		Type:        typeName,
		EnvVar:      s.EnvVar,
	}

	if s.Default != nil && !s.Default.IsNull() {
		converted, err := convert.Convert(*s.Default, cty.String)
		if err != nil {
			return nil, fmt.Errorf("parameter '%s': cannot convert default to string: %w", s.Long, err)
		}
		def.Default = converted.AsString()
	}

	return def, nil
}

func translateArgument(s *argumentSchema) *runtime.ArgumentDefinition {
	return &runtime.ArgumentDefinition{
		Name:        s.Name,
		Description: s.Description,
		Required:    s.Required,
		Variadic:    s.Variadic,
	}
}

// typeExprToName maps a bare type keyword expression, e.g. `type = int`,
// onto the definition model's type name. gohcl decodes an absent
// attribute into a synthetic null literal, which maps to the empty
// name.
func typeExprToName(expr hcl.Expression) (string, error) {
	if expr == nil {
		return "", nil
	}

	if name := hcl.ExprAsKeyword(expr); name != "" {
		switch name {
		case "string", "int", "bool", "duration":
			return name, nil
		}
		return "", fmt.Errorf("unknown parameter type %q", name)
	}

	if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsNull() {
		return "", nil
	}
	return "", fmt.Errorf("type must be a bare keyword: string, int, bool or duration")
}

package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// flagSchema represents a `flag` block. The label is the long name.
type flagSchema struct {
	Long        string `hcl:"long,label"`
	Short       string `hcl:"short,optional"`
	Description string `hcl:"description,optional"`
	EnvVar      string `hcl:"env,optional"`
}

// parameterSchema represents a `parameter` block. The label is the
// long name. Type is captured unevaluated so bare keywords like
// `type = int` work without an evaluation context.
type parameterSchema struct {
	Long        string         `hcl:"long,label"`
	Short       string         `hcl:"short,optional"`
	Description string         `hcl:"description,optional"`
	Placeholder string         `hcl:"placeholder,optional"`
	Type        hcl.Expression `hcl:"type,optional"`
	Default     *cty.Value     `hcl:"default,optional"`
	Required    bool           `hcl:"required,optional"`
	EnvVar      string         `hcl:"env,optional"`
}

// argumentSchema represents an `argument` block.
type argumentSchema struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
	Required    bool   `hcl:"required,optional"`
	Variadic    bool   `hcl:"variadic,optional"`
}

// commandSchema represents a `command` block, either nested or at the
// top level of a file.
type commandSchema struct {
	Name        string             `hcl:"name,label"`
	Aliases     []string           `hcl:"aliases,optional"`
	Description string             `hcl:"description,optional"`
	Run         string             `hcl:"run,optional"`
	Flags       []*flagSchema      `hcl:"flag,block"`
	Parameters  []*parameterSchema `hcl:"parameter,block"`
	Arguments   []*argumentSchema  `hcl:"argument,block"`
	Commands    []*commandSchema   `hcl:"command,block"`
}

// applicationSchema represents the single `application` block.
type applicationSchema struct {
	Name           string             `hcl:"name,label"`
	Description    string             `hcl:"description,optional"`
	Version        string             `hcl:"version,optional"`
	Run            string             `hcl:"run,optional"`
	DisableHelp    bool               `hcl:"disable_help,optional"`
	DisableVersion bool               `hcl:"disable_version,optional"`
	Flags          []*flagSchema      `hcl:"flag,block"`
	Parameters     []*parameterSchema `hcl:"parameter,block"`
	Arguments      []*argumentSchema  `hcl:"argument,block"`
	Commands       []*commandSchema   `hcl:"command,block"`
}

// fileRoot decodes all possible top-level blocks of a manifest file.
type fileRoot struct {
	Applications []*applicationSchema `hcl:"application,block"`
	Commands     []*commandSchema     `hcl:"command,block"`
	Remain       hcl.Body             `hcl:",remain"`
}

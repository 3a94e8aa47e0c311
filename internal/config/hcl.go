package config

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"fundraiser/internal/errors"
)

// hclFile mirrors Config for HCL decoding. Pointers mark values that were
// actually present so absent ones keep their defaults.
type hclFile struct {
	Version    *string        `hcl:"version,optional"`
	Calculator *hclCalculator `hcl:"calculator,block"`
	Report     *hclReport     `hcl:"report,block"`
	Output     *hclOutput     `hcl:"output,block"`
	Logging    *hclLogging    `hcl:"logging,block"`
}

type hclCalculator struct {
	DoneKeyword      *string `hcl:"done_keyword,optional"`
	SkipInstructions *bool   `hcl:"skip_instructions,optional"`
}

type hclReport struct {
	Enabled   *bool   `hcl:"enabled,optional"`
	Directory *string `hcl:"directory,optional"`
}

type hclOutput struct {
	NoColor *bool `hcl:"no_color,optional"`
}

type hclLogging struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

func decodeHCL(filename string, data []byte, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return errors.Config("failed to parse config file", diags)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return errors.Config("failed to decode config file", diags)
	}

	setString(&cfg.Version, raw.Version)
	if c := raw.Calculator; c != nil {
		setString(&cfg.Calculator.DoneKeyword, c.DoneKeyword)
		setBool(&cfg.Calculator.SkipInstructions, c.SkipInstructions)
	}
	if r := raw.Report; r != nil {
		setBool(&cfg.Report.Enabled, r.Enabled)
		setString(&cfg.Report.Directory, r.Directory)
	}
	if o := raw.Output; o != nil {
		setBool(&cfg.Output.NoColor, o.NoColor)
	}
	if l := raw.Logging; l != nil {
		setString(&cfg.Logging.Level, l.Level)
		setString(&cfg.Logging.Format, l.Format)
		setString(&cfg.Logging.Output, l.Output)
		setBool(&cfg.Logging.Development, l.Development)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

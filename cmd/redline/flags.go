package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	OldFile          string
	NewFile          string
	GlobalConfigFile string
	Preset           string
	RuleFile         string
	OutputFile       string
}

func ParseFlags() AppFlags {
	oldFile := flag.String("old", "", "Path to the original document version (plain text or HTML).")
	oldFileAlias := flag.String("o", "", "Alias for -old")

	newFile := flag.String("new", "", "Path to the modified document version (plain text or HTML).")
	newFileAlias := flag.String("n", "", "Alias for -new")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	presetFlag := flag.String("preset", "", "Merge preset to apply: quick-review, balanced-review, brand-guardian, or thorough-review (overrides config file if set).")
	presetFlagAlias := flag.String("p", "", "Alias for -preset")

	ruleFile := flag.String("rules", "", "Path to a custom YAML/JSON rule file (takes precedence over -preset).")
	outputFile := flag.String("output", "", "Path to write the JSON review report. Defaults to stdout.")

	flag.Parse()

	flags := AppFlags{}

	if *oldFile != "" {
		flags.OldFile = *oldFile
	} else if *oldFileAlias != "" {
		flags.OldFile = *oldFileAlias
	}

	if *newFile != "" {
		flags.NewFile = *newFile
	} else if *newFileAlias != "" {
		flags.NewFile = *newFileAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *presetFlag != "" {
		flags.Preset = *presetFlag
	} else if *presetFlagAlias != "" {
		flags.Preset = *presetFlagAlias
	}

	flags.RuleFile = *ruleFile
	flags.OutputFile = *outputFile

	if flags.OldFile == "" || flags.NewFile == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] both -old and -new arguments are required")
		os.Exit(1)
	}

	return flags
}

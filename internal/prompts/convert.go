// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package prompts

import "github.com/charmbracelet/huh"

// formatSelect returns a select field for choosing an output format.
func formatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunConvertForm prompts for any convert inputs still missing after flag
// parsing. Fields already filled in are not asked again.
func RunConvertForm(input, format, output *string, askOutput bool, formats []string) error {
	var fields []huh.Field

	if *input == "" {
		fields = append(fields, huh.NewInput().
			Title("Input schema file").
			Description("Path to a .json, .xsd, or .avsc schema").
			Validate(requiredValidator("input file")).
			Value(input))
	}

	if *format == "" {
		fields = append(fields, formatSelect(format, formats))
	}

	if askOutput {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Description("Also used as the package name for Go and Protobuf output").
			Value(output))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme())
	return form.Run()
}

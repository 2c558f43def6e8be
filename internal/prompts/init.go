// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm prompts for the project defaults written to schemaforge.yaml.
func RunInitForm(namespace, output, format *string, formats []string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default namespace").
				Description("Dotted Avro namespace applied to converted types (optional)").
				Validate(namespaceValidator).
				Value(namespace),
			huh.NewInput().
				Title("Default output directory").
				Value(output),
			formatSelect(format, formats),
		),
	).WithTheme(Theme())

	return form.Run()
}

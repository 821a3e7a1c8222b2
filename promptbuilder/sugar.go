/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Helpers that panic on error, for package-level prompt variables whose
// templates are fixed at compile time.

// Must wraps a call returning (*Prompt, error) and panics on error.
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNew parses a template literal and panics on error.
func MustNew(template literal) *Prompt {
	return Must(New(template))
}

// MustBindText binds a plain string value and panics on error.
func (p *Prompt) MustBindText(name, value string) *Prompt {
	return Must(p.BindText(name, value))
}

// MustBindYAML binds structured data as YAML and panics on error.
func (p *Prompt) MustBindYAML(name string, data any) *Prompt {
	return Must(p.BindYAML(name, data))
}

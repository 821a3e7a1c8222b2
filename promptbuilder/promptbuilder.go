/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder assembles grading prompts from templates with
// {{name}} placeholders. Prompts are immutable: each Bind* call returns a new
// Prompt, and Build fails if any placeholder is still unbound, so a prompt
// with a forgotten binding can never reach a model.
package promptbuilder

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// literal only accepts untyped string constants at call sites, which keeps
// template text under developer control.
type literal string

// Prompt is a template with named placeholders and their bindings.
type Prompt struct {
	template string
	bindings map[string]binding
}

// New parses a template literal and records every placeholder it contains.
func New(template literal) (*Prompt, error) {
	bindings := make(map[string]binding)
	// Walking with an identity resolver both validates the template and
	// collects the placeholder names.
	parsed, err := walk(string(template), func(name string) (string, error) {
		if _, ok := bindings[name]; !ok {
			bindings[name] = unbound(name)
		}
		return "{{" + name + "}}", nil
	})
	if err != nil {
		return nil, err
	}
	return &Prompt{template: parsed, bindings: bindings}, nil
}

// Placeholders returns the set of placeholder names found in the template.
func (p *Prompt) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// with returns a copy of the prompt with one additional binding applied.
func (p *Prompt) with(name string, b binding) (*Prompt, error) {
	cur, ok := p.bindings[name]
	if !ok {
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	}
	if _, isUnbound := cur.(unbound); !isUnbound {
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Prompt{template: p.template, bindings: maps.Clone(p.bindings)}
	next.bindings[name] = b
	return next, nil
}

// BindText binds a plain string value to a placeholder.
func (p *Prompt) BindText(name, value string) (*Prompt, error) {
	return p.with(name, textBinding(value))
}

// BindXML binds structured data to a placeholder, rendered as indented XML.
func (p *Prompt) BindXML(name string, data any) (*Prompt, error) {
	return p.with(name, &xmlBinding{data: data})
}

// BindJSON binds structured data to a placeholder, rendered as indented JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.with(name, &jsonBinding{data: data})
}

// BindYAML binds structured data to a placeholder, rendered as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.with(name, &yamlBinding{data: data})
}

// Build renders the final prompt text, failing on any unbound placeholder.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for name, b := range p.bindings {
		v, err := b.value()
		if err != nil {
			return "", err
		}
		values[name] = v
	}
	return walk(p.template, func(name string) (string, error) {
		if v, ok := values[name]; ok {
			return v, nil
		}
		return "", fmt.Errorf("internal error: no value for placeholder %q", name)
	})
}

// walk tokenizes the template, invoking resolve for each placeholder.
func walk(template string, resolve func(name string) (string, error)) (string, error) {
	var out strings.Builder
	for len(template) > 0 {
		start := strings.Index(template, "{{")
		if start == -1 {
			out.WriteString(template)
			break
		}
		out.WriteString(template[:start])

		end := strings.Index(template[start:], "}}")
		if end == -1 {
			return "", errors.New("unclosed placeholder: missing '}}'")
		}
		end += start + 2

		name := strings.TrimSpace(template[start+2 : end-2])
		if !validName(name) {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}
		replacement, err := resolve(name)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)
		template = template[end:]
	}
	return out.String(), nil
}

// validName reports whether s is a letter followed by letters, digits, or
// underscores.
func validName(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"
)

// binding produces the substitution text for one placeholder.
type binding interface {
	value() (string, error)
}

// unbound is the initial state of every placeholder.
type unbound string

func (u unbound) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", string(u))
}

// textBinding holds a plain string value.
type textBinding string

func (t textBinding) value() (string, error) {
	return string(t), nil
}

// xmlBinding marshals its data as indented XML.
type xmlBinding struct {
	data any
}

func (x *xmlBinding) value() (string, error) {
	b, err := xml.MarshalIndent(x.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling XML binding: %w", err)
	}
	return string(b), nil
}

// jsonBinding marshals its data as indented JSON.
type jsonBinding struct {
	data any
}

func (j *jsonBinding) value() (string, error) {
	b, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON binding: %w", err)
	}
	return string(b), nil
}

// yamlBinding marshals its data as YAML.
type yamlBinding struct {
	data any
}

func (y *yamlBinding) value() (string, error) {
	b, err := yaml.Marshal(y.data)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML binding: %w", err)
	}
	return string(b), nil
}

package envcheck

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Environment is a conda style environment.yml.
type Environment struct {
	Name     string
	Channels []string
	// Conda holds package specs installed by conda, such as "numpy=1.24".
	Conda []string
	// Pip holds specs from the nested pip list.
	Pip []string
}

type environmentDisk struct {
	Name         string       `yaml:"name"`
	Channels     []string     `yaml:"channels"`
	Dependencies []dependency `yaml:"dependencies"`
	Prefix       string       `yaml:"prefix,omitempty"`
}

// dependency is either a conda spec string or a {pip: [...]} mapping.
type dependency struct {
	spec string
	pip  []string
}

func (d *dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.spec)
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if key != "pip" {
				return fmt.Errorf("line %d: unknown dependency section %q", node.Content[i].Line, key)
			}
			if err := node.Content[i+1].Decode(&d.pip); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: dependency must be a string or a pip section", node.Line)
	}
}

// LoadEnvironment decodes an environment.yml. Unknown top level keys are rejected.
func LoadEnvironment(r io.Reader) (*Environment, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw environmentDisk
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty environment file", errkind.ErrValue)
		}
		return nil, fmt.Errorf("%w: environment: %w", errkind.ErrValue, err)
	}

	env := &Environment{Name: raw.Name, Channels: raw.Channels}
	for _, d := range raw.Dependencies {
		if d.pip != nil {
			env.Pip = append(env.Pip, d.pip...)
			continue
		}
		env.Conda = append(env.Conda, d.spec)
	}
	return env, nil
}

// Requirements flattens the conda and pip specs. Conda's single "=" becomes a prefix
// match; the bare "pip" entry that enables the pip section is dropped.
func (e *Environment) Requirements() ([]Requirement, error) {
	var (
		reqs []Requirement
		errz []error
	)
	for _, spec := range e.Conda {
		if spec == "pip" {
			continue
		}
		req, err := parseRequirement(spec, OpEqual, OpAtLeast, OpPrefix)
		if err != nil {
			errz = append(errz, err)
			continue
		}
		reqs = append(reqs, req)
	}
	for _, spec := range e.Pip {
		req, err := parseRequirement(spec, OpEqual, OpAtLeast)
		if err != nil {
			errz = append(errz, err)
			continue
		}
		reqs = append(reqs, req)
	}
	if len(errz) > 0 {
		return nil, errors.Join(errz...)
	}
	return reqs, nil
}

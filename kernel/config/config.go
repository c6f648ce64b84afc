package config

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config selects the bus and maps resource kinds to the inventory interfaces
// used to find them.
type Config struct {
	Bus       string              `yaml:"bus"`
	Resources map[string]Resource `yaml:"resources"`
}

// Resource describes one isolatable resource kind.
type Resource struct {
	// Name is the resource type name echoed back in API outcomes.
	Name string `yaml:"name"`
	// Interfaces is the capability set used to find the resource in the
	// inventory. The enable/disable marker is appended at request time, not
	// listed here.
	Interfaces []string `yaml:"interfaces"`
}

// Defaults returns the built-in resource kinds.
func Defaults() *Config {
	return &Config{
		Bus: "system",
		Resources: map[string]Resource{
			"processor": {
				Name:       "Processor",
				Interfaces: []string{"xyz.openbmc_project.Inventory.Item.Cpu"},
			},
			"core": {
				Name:       "Core",
				Interfaces: []string{"xyz.openbmc_project.Inventory.Item.CpuCore"},
			},
			"memory": {
				Name:       "Memory",
				Interfaces: []string{"xyz.openbmc_project.Inventory.Item.Dimm"},
			},
			"pcie-device": {
				Name:       "PCIeDevice",
				Interfaces: []string{"xyz.openbmc_project.Inventory.Item.PCIeDevice"},
			},
		},
	}
}

// Load reads a YAML config and merges it over the defaults. Kinds in the file
// override or extend the built-in set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config [%s]", path)
	}

	var loaded Config
	if err := yaml.UnmarshalStrict(data, &loaded); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config [%s]", path)
	}

	cfg := Defaults()
	if loaded.Bus != "" {
		cfg.Bus = loaded.Bus
	}
	for kind, resource := range loaded.Resources {
		if len(resource.Interfaces) == 0 {
			return nil, errors.Errorf("resource kind [%s] has no interfaces", kind)
		}
		if resource.Name == "" {
			return nil, errors.Errorf("resource kind [%s] has no name", kind)
		}
		cfg.Resources[kind] = resource
	}
	return cfg, nil
}

// Resource looks up a resource kind.
func (c *Config) Resource(kind string) (Resource, error) {
	r, ok := c.Resources[kind]
	if !ok {
		return Resource{}, errors.Errorf("unknown resource kind [%s], expected one of %v", kind, c.Kinds())
	}
	return r, nil
}

// Kinds returns the configured resource kinds, sorted.
func (c *Config) Kinds() []string {
	kinds := make([]string, 0, len(c.Resources))
	for kind := range c.Resources {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

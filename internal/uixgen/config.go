package uixgen

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Version is the compiler version, checked against a config's `requires`
// constraint.
const Version = "0.3.0"

// DefaultConfigFile is the config filename looked up in the working
// directory when no --config flag is given.
const DefaultConfigFile = "uix.yaml"

// Config carries the toolkit conventions the generator targets. The
// native-tag allow-list and the component constructor convention are
// expected to evolve with the toolkit, so they are data, not code.
type Config struct {
	// Requires is an optional semver constraint on the compiler version.
	Requires string `yaml:"requires,omitempty"`

	// NativeTags is the allow-list of heads mapped to zero-argument
	// toolkit constructors.
	NativeTags []string `yaml:"nativeTags,omitempty"`

	// ConstructorPrefix builds the implicit component constructor name:
	// Header -> NewHeader().
	ConstructorPrefix string `yaml:"constructorPrefix,omitempty"`

	// ChildMethod and ChildrenMethod are the single- and multi-child
	// attachment calls.
	ChildMethod    string `yaml:"childMethod,omitempty"`
	ChildrenMethod string `yaml:"childrenMethod,omitempty"`

	// EraseMethod and DeferredFunc spell the deferred wrapping:
	// DeferredFunc((x).EraseMethod()).
	EraseMethod  string `yaml:"eraseMethod,omitempty"`
	DeferredFunc string `yaml:"deferredFunc,omitempty"`

	// ToolkitImport is added to every generated file. ToolkitAlias defaults
	// to a dot import so bare constructors resolve.
	ToolkitImport string `yaml:"toolkitImport,omitempty"`
	ToolkitAlias  string `yaml:"toolkitAlias,omitempty"`

	// NodeType is the return type of generated view functions.
	NodeType string `yaml:"nodeType,omitempty"`
}

// DefaultConfig returns the built-in toolkit conventions.
func DefaultConfig() *Config {
	return &Config{
		NativeTags:        []string{"div", "svg", "img", "canvas", "anchored"},
		ConstructorPrefix: "New",
		ChildMethod:       "Child",
		ChildrenMethod:    "Children",
		EraseMethod:       "IntoAnyElement",
		DeferredFunc:      "Deferred",
		ToolkitImport:     "github.com/uixlang/toolkit",
		ToolkitAlias:      ".",
		NodeType:          "Element",
	}
}

// LoadConfig reads a YAML config file and fills unset fields from the
// defaults. It fails if the file's `requires` constraint rejects Version.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.checkRequires(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills any field the file left empty.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if len(c.NativeTags) == 0 {
		c.NativeTags = def.NativeTags
	}
	if c.ConstructorPrefix == "" {
		c.ConstructorPrefix = def.ConstructorPrefix
	}
	if c.ChildMethod == "" {
		c.ChildMethod = def.ChildMethod
	}
	if c.ChildrenMethod == "" {
		c.ChildrenMethod = def.ChildrenMethod
	}
	if c.EraseMethod == "" {
		c.EraseMethod = def.EraseMethod
	}
	if c.DeferredFunc == "" {
		c.DeferredFunc = def.DeferredFunc
	}
	if c.ToolkitImport == "" {
		c.ToolkitImport = def.ToolkitImport
	}
	if c.ToolkitAlias == "" {
		c.ToolkitAlias = def.ToolkitAlias
	}
	if c.NodeType == "" {
		c.NodeType = def.NodeType
	}
}

// checkRequires validates the compiler version against the `requires`
// semver constraint, if one is set.
func (c *Config) checkRequires() error {
	if c.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", c.Requires, err)
	}
	version, err := semver.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("invalid compiler version %q: %w", Version, err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("uix %s does not satisfy requires %q", Version, c.Requires)
	}
	return nil
}

// NativeTagSet returns the allow-list as a lookup set.
func (c *Config) NativeTagSet() map[string]bool {
	set := make(map[string]bool, len(c.NativeTags))
	for _, tag := range c.NativeTags {
		set[tag] = true
	}
	return set
}

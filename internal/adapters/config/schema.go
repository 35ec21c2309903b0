package config

import "gopkg.in/yaml.v3"

// DefinitionFile represents the structure of a package definition file.
type DefinitionFile struct {
	Name     string   `yaml:"name"`
	Homepage string   `yaml:"homepage"`
	Stable   *SpecDTO `yaml:"stable"`
	Head     *SpecDTO `yaml:"head"`
	Devel    *SpecDTO `yaml:"devel"`

	// Livecheck is kept as a raw node so that each key can be checked
	// against the shape its setter expects.
	Livecheck yaml.Node `yaml:"livecheck"`
}

// SpecDTO represents a build variant in a package definition file.
type SpecDTO struct {
	URL string `yaml:"url"`
}

// Livecheck block keys.
const (
	fieldRegex    = "regex"
	fieldSkip     = "skip"
	fieldStrategy = "strategy"
	fieldURL      = "url"
)

// mergeTag is the resolved tag of a "<<" merge key.
const mergeTag = "!!merge"

// literalTag forces a url scalar to be used verbatim even if it spells an alias.
const literalTag = "!literal"

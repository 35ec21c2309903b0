// Package config loads package definition files for livecheck.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/livecheck/internal/core/domain"
	"go.trai.ch/livecheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileLoader implements ports.DefinitionLoader using YAML files.
type FileLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileLoader.
func NewLoader(logger ports.Logger) *FileLoader {
	return &FileLoader{logger: logger}
}

// Load reads the package definition at path. The returned formula's livecheck
// block, if any, is finalized.
func (l *FileLoader) Load(path string) (*domain.Formula, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package definition"), "path", path)
	}

	f, err := l.Parse(path, data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return f, nil
}

// Parse builds a formula from the YAML document in data. path is used to
// derive the package name when the document does not set one.
func (l *FileLoader) Parse(path string, data []byte) (*domain.Formula, error) {
	var file DefinitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse package definition")
	}

	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	f := &domain.Formula{
		Name:     domain.NewInternedString(name),
		Homepage: file.Homepage,
		Stable:   toSpec(file.Stable),
		Head:     toSpec(file.Head),
		Devel:    toSpec(file.Devel),
	}

	if file.Livecheck.Kind == 0 {
		return f, nil
	}

	lc := f.Livecheck()
	if err := l.applyLivecheck(lc, &file.Livecheck); err != nil {
		return nil, zerr.With(err, "package", name)
	}
	lc.Finalize()

	return f, nil
}

func toSpec(dto *SpecDTO) *domain.SoftwareSpec {
	if dto == nil {
		return nil
	}
	return &domain.SoftwareSpec{URL: dto.URL}
}

// applyLivecheck maps each key of the livecheck block onto its setter. Merged
// mappings ("<<") are applied first so that keys written in the block win.
func (l *FileLoader) applyLivecheck(lc *domain.Livecheck, node *yaml.Node) error {
	node = deref(node)
	if node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return nodeMismatch("livecheck", node, "livecheck must be a mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := deref(node.Content[i])
		if key.ShortTag() != mergeTag {
			continue
		}
		if err := l.applyMerge(lc, node.Content[i+1]); err != nil {
			return err
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := deref(node.Content[i]), node.Content[i+1]
		if key.ShortTag() == mergeTag {
			continue
		}

		var err error
		switch key.Value {
		case fieldRegex:
			err = applyRegex(lc, value)
		case fieldSkip:
			err = l.applySkip(lc, value)
		case fieldStrategy:
			err = applyStrategy(lc, value)
		case fieldURL:
			err = applyURL(lc, value)
		default:
			err = zerr.With(zerr.Wrap(domain.ErrUnknownField, "unsupported livecheck key"), "field", key.Value)
		}
		if err != nil {
			return zerr.With(err, "line", node.Content[i].Line)
		}
	}
	return nil
}

// applyMerge applies the mapping, or list of mappings, behind a "<<" key.
// Earlier mappings in a list take precedence over later ones.
func (l *FileLoader) applyMerge(lc *domain.Livecheck, node *yaml.Node) error {
	node = deref(node)
	if node.Kind != yaml.SequenceNode {
		return l.applyLivecheck(lc, node)
	}
	for i := len(node.Content) - 1; i >= 0; i-- {
		if err := l.applyLivecheck(lc, node.Content[i]); err != nil {
			return err
		}
	}
	return nil
}

// deref follows alias nodes to the anchored node they refer to.
func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func applyRegex(lc *domain.Livecheck, node *yaml.Node) error {
	node = deref(node)
	switch node.ShortTag() {
	case "!!null":
		return nil
	case "!!str":
		return lc.SetPattern(node.Value)
	default:
		return nodeMismatch(fieldRegex, node, "livecheck regex expects a pattern string")
	}
}

func (l *FileLoader) applySkip(lc *domain.Livecheck, node *yaml.Node) error {
	node = deref(node)
	switch node.ShortTag() {
	case "!!null":
		return lc.Skip()
	case "!!str":
		return lc.SkipWithMessage(node.Value)
	case "!!bool":
		var skip bool
		if err := node.Decode(&skip); err != nil {
			return zerr.Wrap(err, "failed to decode skip")
		}
		if !skip {
			if l.logger != nil {
				l.logger.Warn("livecheck skip: false has no effect")
			}
			return nil
		}
		return lc.Skip()
	default:
		return nodeMismatch(fieldSkip, node, "livecheck skip expects a message string")
	}
}

func applyStrategy(lc *domain.Livecheck, node *yaml.Node) error {
	node = deref(node)
	switch node.ShortTag() {
	case "!!null":
		return nil
	case "!!str":
		s, err := domain.ParseStrategy(node.Value)
		if err != nil {
			return zerr.With(err, "field", fieldStrategy)
		}
		return lc.SetStrategy(s)
	default:
		return nodeMismatch(fieldStrategy, node, "livecheck strategy expects a strategy name")
	}
}

func applyURL(lc *domain.Livecheck, node *yaml.Node) error {
	node = deref(node)
	var spec domain.URLSpec
	switch node.ShortTag() {
	case "!!null":
		return nil
	case literalTag:
		spec = domain.LiteralURL(node.Value)
	case "!!str":
		if alias, ok := domain.ParseURLAlias(node.Value); ok {
			spec = alias
		} else {
			spec = domain.LiteralURL(node.Value)
		}
	default:
		return nodeMismatch(fieldURL, node, "livecheck url expects a URL or an alias")
	}

	_, err := lc.SetURL(spec)
	return err
}

func nodeMismatch(field string, node *yaml.Node, message string) error {
	err := zerr.With(zerr.Wrap(domain.ErrTypeMismatch, message), "field", field)
	return zerr.With(err, "got", node.ShortTag())
}

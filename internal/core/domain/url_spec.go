package domain

import (
	"go.trai.ch/zerr"
)

// BuildVariant names one of the source references a package definition may offer.
type BuildVariant int

const (
	// VariantStable is the released source of a package.
	VariantStable BuildVariant = iota + 1
	// VariantHead is the development branch of a package's repository.
	VariantHead
	// VariantDevel is a pre-release source of a package.
	VariantDevel
)

// String returns the variant name as it appears in package definitions.
func (v BuildVariant) String() string {
	switch v {
	case VariantStable:
		return "stable"
	case VariantHead:
		return "head"
	case VariantDevel:
		return "devel"
	default:
		return "unknown"
	}
}

// URLSource is the read-only view of a package definition needed to resolve URL aliases.
type URLSource interface {
	// VariantURL returns the URL of the given build variant.
	// It fails with ErrVariantNotDefined when the package does not declare the variant.
	VariantURL(variant BuildVariant) (string, error)

	// HomepageURL returns the package homepage.
	HomepageURL() string
}

// URLSpec describes where livecheck should look: either an alias of one of the
// package's own URLs or a literal URL. The set of implementations is closed.
type URLSpec interface {
	resolve(src URLSource) (string, error)
}

// URLAlias refers to a URL the package definition already knows about.
type URLAlias int

const (
	// AliasHead resolves to the head variant URL.
	AliasHead URLAlias = iota + 1
	// AliasStable resolves to the stable variant URL.
	AliasStable
	// AliasDevel resolves to the devel variant URL.
	AliasDevel
	// AliasHomepage resolves to the package homepage.
	AliasHomepage
)

var urlAliases = map[string]URLAlias{
	"head":     AliasHead,
	"stable":   AliasStable,
	"devel":    AliasDevel,
	"homepage": AliasHomepage,
}

// ParseURLAlias maps a reserved alias name to its URLAlias.
func ParseURLAlias(name string) (URLAlias, bool) {
	a, ok := urlAliases[name]
	return a, ok
}

// String returns the alias name.
func (a URLAlias) String() string {
	for name, alias := range urlAliases {
		if alias == a {
			return name
		}
	}
	return "unknown"
}

func (a URLAlias) resolve(src URLSource) (string, error) {
	if src == nil && a >= AliasHead && a <= AliasHomepage {
		return "", zerr.With(zerr.Wrap(ErrVariantNotDefined, "no package definition to resolve alias"), "alias", a.String())
	}
	switch a {
	case AliasHead:
		return src.VariantURL(VariantHead)
	case AliasStable:
		return src.VariantURL(VariantStable)
	case AliasDevel:
		return src.VariantURL(VariantDevel)
	case AliasHomepage:
		return src.HomepageURL(), nil
	default:
		return "", zerr.With(typeMismatch("url", "livecheck url expects a literal URL or a known alias"), "alias", int(a))
	}
}

// LiteralURL is a URL used verbatim.
type LiteralURL string

func (u LiteralURL) resolve(URLSource) (string, error) {
	return string(u), nil
}

// ResolveURL turns spec into the URL string livecheck should fetch.
// Alias resolution reads src once; errors from src are returned unchanged.
func ResolveURL(spec URLSpec, src URLSource) (string, error) {
	if spec == nil {
		return "", typeMismatch("url", "livecheck url expects a literal URL or a known alias")
	}
	return spec.resolve(src)
}

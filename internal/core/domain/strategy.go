package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Strategy identifies a version discovery strategy implemented by the update checker.
// Strategy values can only be obtained from the package-level variables or ParseStrategy,
// so an arbitrary string cannot stand in for one.
type Strategy struct {
	name InternedString
}

// Known strategies. Names are snake_case and match the update checker's strategy files.
var (
	StrategyApache          = newStrategy("apache")
	StrategyBitbucket       = newStrategy("bitbucket")
	StrategyCpan            = newStrategy("cpan")
	StrategyCrate           = newStrategy("crate")
	StrategyElectronBuilder = newStrategy("electron_builder")
	StrategyExtractPlist    = newStrategy("extract_plist")
	StrategyGit             = newStrategy("git")
	StrategyGithubLatest    = newStrategy("github_latest")
	StrategyGithubReleases  = newStrategy("github_releases")
	StrategyGnome           = newStrategy("gnome")
	StrategyGnu             = newStrategy("gnu")
	StrategyHackage         = newStrategy("hackage")
	StrategyHeaderMatch     = newStrategy("header_match")
	StrategyJSON            = newStrategy("json")
	StrategyLaunchpad       = newStrategy("launchpad")
	StrategyNpm             = newStrategy("npm")
	StrategyPageMatch       = newStrategy("page_match")
	StrategyPypi            = newStrategy("pypi")
	StrategySourceforge     = newStrategy("sourceforge")
	StrategySparkle         = newStrategy("sparkle")
	StrategyXML             = newStrategy("xml")
	StrategyXorg            = newStrategy("xorg")
	StrategyYAML            = newStrategy("yaml")
)

var strategies = map[string]Strategy{}

func newStrategy(name string) Strategy {
	s := Strategy{name: NewInternedString(name)}
	strategies[name] = s
	return s
}

// ParseStrategy looks up a strategy by its snake_case name.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return Strategy{}, zerr.With(zerr.Wrap(ErrUnknownStrategy, "strategy is not registered"), "strategy", name)
	}
	return s, nil
}

// Strategies returns every known strategy, sorted by name.
func Strategies() []Strategy {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	slices.Sort(names)

	res := make([]Strategy, len(names))
	for i, name := range names {
		res[i] = strategies[name]
	}
	return res
}

// String returns the strategy name.
func (s Strategy) String() string {
	return s.name.String()
}

// IsZero reports whether s is the unset strategy.
func (s Strategy) IsZero() bool {
	return s.name.IsZero()
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are rejected.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Strategy) registered() bool {
	if s.IsZero() {
		return false
	}
	known, ok := strategies[s.String()]
	return ok && known == s
}

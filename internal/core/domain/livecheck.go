package domain

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"go.trai.ch/zerr"
)

// Livecheck records how newer upstream versions of a package are discovered.
// It is filled in while the package definition is loaded, finalized, and then
// only read. It has no internal locking: concurrent reads are safe once no
// setter runs anymore.
type Livecheck struct {
	owner URLSource

	regex       *regexp2.Regexp
	skip        bool
	skipMessage string
	hasSkipMsg  bool
	strategy    Strategy
	url         string
	hasURL      bool

	finalized bool
}

// NewLivecheck creates an empty livecheck block for the package definition owner.
// The owner is only consulted when SetURL resolves an alias.
func NewLivecheck(owner URLSource) *Livecheck {
	return &Livecheck{owner: owner}
}

// Regex returns the version pattern, or nil if none was set.
func (l *Livecheck) Regex() *regexp2.Regexp {
	return l.regex
}

// SetRegex sets the pattern used to extract versions from fetched content.
func (l *Livecheck) SetRegex(re *regexp2.Regexp) error {
	if err := l.checkMutable("regex"); err != nil {
		return err
	}
	if re == nil {
		return typeMismatch("regex", "livecheck regex expects a compiled pattern")
	}
	l.regex = re
	return nil
}

// SetPattern compiles expr and stores it as the version pattern.
func (l *Livecheck) SetPattern(expr string) error {
	if err := l.checkMutable("regex"); err != nil {
		return err
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		cause := fmt.Errorf("%w: %w", ErrInvalidRegex, err)
		return zerr.With(zerr.With(zerr.Wrap(cause, "cannot compile livecheck regex"), "field", "regex"), "pattern", expr)
	}
	l.regex = re
	return nil
}

// Skip disables livecheck for the package without giving a reason.
func (l *Livecheck) Skip() error {
	if err := l.checkMutable("skip"); err != nil {
		return err
	}
	l.skip = true
	return nil
}

// SkipWithMessage disables livecheck for the package and records why.
// An empty message behaves like Skip.
func (l *Livecheck) SkipWithMessage(msg string) error {
	if err := l.checkMutable("skip"); err != nil {
		return err
	}
	if msg != "" {
		l.skipMessage = msg
		l.hasSkipMsg = true
	}
	l.skip = true
	return nil
}

// Skipped reports whether livecheck is disabled for the package.
func (l *Livecheck) Skipped() bool {
	return l.skip
}

// SkipMessage returns the reason livecheck is skipped, if one was given.
func (l *Livecheck) SkipMessage() (string, bool) {
	return l.skipMessage, l.hasSkipMsg
}

// Strategy returns the configured discovery strategy.
// The second result is false when the update checker should pick one itself.
func (l *Livecheck) Strategy() (Strategy, bool) {
	return l.strategy, !l.strategy.IsZero()
}

// SetStrategy selects the discovery strategy.
func (l *Livecheck) SetStrategy(s Strategy) error {
	if err := l.checkMutable("strategy"); err != nil {
		return err
	}
	if !s.registered() {
		return typeMismatch("strategy", "livecheck strategy expects a known strategy")
	}
	l.strategy = s
	return nil
}

// URL returns the URL to check, if one was set.
func (l *Livecheck) URL() (string, bool) {
	return l.url, l.hasURL
}

// SetURL resolves spec against the owning package definition and stores the
// resulting URL. Aliases are resolved immediately; later changes to the package
// definition do not affect the stored value.
func (l *Livecheck) SetURL(spec URLSpec) (string, error) {
	if err := l.checkMutable("url"); err != nil {
		return "", err
	}
	url, err := ResolveURL(spec, l.owner)
	if err != nil {
		return "", err
	}
	l.url = url
	l.hasURL = true
	return url, nil
}

// Finalize freezes the block. Setters called afterwards fail with ErrFinalized.
func (l *Livecheck) Finalize() {
	l.finalized = true
}

// Finalized reports whether Finalize has been called.
func (l *Livecheck) Finalized() bool {
	return l.finalized
}

// Snapshot returns the current configuration as an immutable value.
func (l *Livecheck) Snapshot() Snapshot {
	s := Snapshot{
		Regex: l.regex,
		Skip:  l.skip,
	}
	if l.hasSkipMsg {
		msg := l.skipMessage
		s.SkipMessage = &msg
	}
	if !l.strategy.IsZero() {
		strategy := l.strategy
		s.Strategy = &strategy
	}
	if l.hasURL {
		url := l.url
		s.URL = &url
	}
	return s
}

func (l *Livecheck) checkMutable(field string) error {
	if l.finalized {
		return zerr.With(zerr.Wrap(ErrFinalized, "cannot modify livecheck"), "field", field)
	}
	return nil
}

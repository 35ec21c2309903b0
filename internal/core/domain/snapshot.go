package domain

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"github.com/dlclark/regexp2"
)

// Snapshot keys, in the order they are rendered.
const (
	KeyRegex       = "regex"
	KeySkip        = "skip"
	KeySkipMessage = "skip_msg"
	KeyStrategy    = "strategy"
	KeyURL         = "url"
)

// SnapshotKeys lists every key of a snapshot in render order.
var SnapshotKeys = []string{KeyRegex, KeySkip, KeySkipMessage, KeyStrategy, KeyURL}

// Snapshot is a read-only view of a livecheck block handed to the update checker.
// Nil fields are unset.
type Snapshot struct {
	Regex       *regexp2.Regexp
	Skip        bool
	SkipMessage *string
	Strategy    *Strategy
	URL         *string
}

// snapshotDoc is the serialized form of a Snapshot. Unset values encode as null
// so that every key is always present.
type snapshotDoc struct {
	Regex       *string `json:"regex"    yaml:"regex"`
	Skip        bool    `json:"skip"     yaml:"skip"`
	SkipMessage *string `json:"skip_msg" yaml:"skip_msg"`
	Strategy    *string `json:"strategy" yaml:"strategy"`
	URL         *string `json:"url"      yaml:"url"`
}

func (s Snapshot) doc() snapshotDoc {
	d := snapshotDoc{
		Skip:        s.Skip,
		SkipMessage: s.SkipMessage,
		URL:         s.URL,
	}
	if s.Regex != nil {
		pattern := s.Regex.String()
		d.Regex = &pattern
	}
	if s.Strategy != nil {
		name := s.Strategy.String()
		d.Strategy = &name
	}
	return d
}

// Map returns the snapshot as a map with exactly the five snapshot keys.
// Unset values are nil; no key is ever missing.
func (s Snapshot) Map() map[string]any {
	m := map[string]any{
		KeyRegex:       nil,
		KeySkip:        s.Skip,
		KeySkipMessage: nil,
		KeyStrategy:    nil,
		KeyURL:         nil,
	}
	if s.Regex != nil {
		m[KeyRegex] = s.Regex
	}
	if s.SkipMessage != nil {
		m[KeySkipMessage] = *s.SkipMessage
	}
	if s.Strategy != nil {
		m[KeyStrategy] = *s.Strategy
	}
	if s.URL != nil {
		m[KeyURL] = *s.URL
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (s Snapshot) MarshalYAML() (any, error) {
	return s.doc(), nil
}

// Digest returns a fingerprint of the snapshot. Two snapshots with equal
// serialized forms have equal digests.
func (s Snapshot) Digest() uint64 {
	data, err := json.Marshal(s.doc())
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

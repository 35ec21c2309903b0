package domain

import "go.trai.ch/zerr"

// SoftwareSpec is one downloadable source of a package.
type SoftwareSpec struct {
	// URL is the download or repository URL of the source.
	URL string
}

// Formula is a package definition: its identity, where its sources live and
// how newer upstream versions are discovered.
type Formula struct {
	// Name is the package name (e.g., "wget").
	Name InternedString

	// Homepage is the project homepage.
	Homepage string

	// Stable, Head and Devel are the build variants. A nil variant is not declared.
	Stable *SoftwareSpec
	Head   *SoftwareSpec
	Devel  *SoftwareSpec

	livecheck *Livecheck
}

// VariantURL returns the URL of the requested build variant.
// Returns ErrVariantNotDefined if the formula does not declare that variant.
func (f *Formula) VariantURL(variant BuildVariant) (string, error) {
	var spec *SoftwareSpec
	switch variant {
	case VariantStable:
		spec = f.Stable
	case VariantHead:
		spec = f.Head
	case VariantDevel:
		spec = f.Devel
	}

	if spec == nil {
		err := zerr.With(zerr.Wrap(ErrVariantNotDefined, "cannot resolve variant url"), "package", f.Name.String())
		return "", zerr.With(err, "variant", variant.String())
	}
	return spec.URL, nil
}

// HomepageURL returns the formula homepage.
func (f *Formula) HomepageURL() string {
	return f.Homepage
}

// Livecheck returns the formula's livecheck block, creating it on first use.
func (f *Formula) Livecheck() *Livecheck {
	if f.livecheck == nil {
		f.livecheck = NewLivecheck(f)
	}
	return f.livecheck
}

// LivecheckSnapshot returns the snapshot of the livecheck block. A formula
// without a block yields the snapshot of an empty one and stays without a block.
func (f *Formula) LivecheckSnapshot() Snapshot {
	if f.livecheck == nil {
		return Snapshot{}
	}
	return f.livecheck.Snapshot()
}

// HasLivecheck reports whether a livecheck block has been created for the formula.
func (f *Formula) HasLivecheck() bool {
	return f.livecheck != nil
}

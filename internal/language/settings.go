package language

import (
	"fmt"
	"sort"
)

// Version is a language version such as 1.1.
type Version struct {
	Major int
	Minor int
}

var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version2_0 = Version{2, 0}

	Latest = Version2_0
)

var knownVersions = []Version{Version1_0, Version1_1, Version2_0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// ParseVersion accepts "1.0", "1.1" and "2.0".
func ParseVersion(s string) (Version, error) {
	for _, v := range knownVersions {
		if v.String() == s {
			return v, nil
		}
	}
	return Version{}, fmt.Errorf("unknown language version %q", s)
}

// Feature is a language capability that can be switched on by version or
// overridden explicitly.
type Feature int

const (
	// LocalVariableSmartCasts lets flow facts about local `var`s that are
	// never written from a lambda narrow their type.
	LocalVariableSmartCasts Feature = iota
	// CapturedVariableSmartCasts extends that to locals written from lambdas.
	CapturedVariableSmartCasts
)

type featureInfo struct {
	name  string
	since Version
}

var features = map[Feature]featureInfo{
	LocalVariableSmartCasts:    {"LocalVariableSmartCasts", Version1_1},
	CapturedVariableSmartCasts: {"CapturedVariableSmartCasts", Version2_0},
}

func (f Feature) String() string {
	if info, ok := features[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

// SinceVersion is the first version that enables f by default.
func (f Feature) SinceVersion() Version {
	return features[f].since
}

func FeatureByName(name string) (Feature, bool) {
	for f, info := range features {
		if info.name == name {
			return f, true
		}
	}
	return 0, false
}

// FeatureNames lists all feature names in sorted order.
func FeatureNames() []string {
	names := make([]string, 0, len(features))
	for _, info := range features {
		names = append(names, info.name)
	}
	sort.Strings(names)
	return names
}

// Settings is the active language version plus explicit feature overrides.
// The zero value means "latest version, no overrides".
type Settings struct {
	Version   Version
	Overrides map[Feature]bool
}

func NewSettings(v Version) Settings {
	return Settings{Version: v}
}

// With returns a copy of s with f forced on or off.
func (s Settings) With(f Feature, enabled bool) Settings {
	overrides := make(map[Feature]bool, len(s.Overrides)+1)
	for k, v := range s.Overrides {
		overrides[k] = v
	}
	overrides[f] = enabled
	return Settings{Version: s.Version, Overrides: overrides}
}

func (s Settings) Supports(f Feature) bool {
	if enabled, ok := s.Overrides[f]; ok {
		return enabled
	}
	v := s.Version
	if v == (Version{}) {
		v = Latest
	}
	return v.AtLeast(f.SinceVersion())
}

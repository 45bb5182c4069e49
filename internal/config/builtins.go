package config

// Platform and architecture names recognized by the `os(...)` / `arch(...)`
// build-configuration predicates (spec.md §3, Statement → BuildConfiguration)
// and by `#available`'s platform argument.

// PlatformName describes one entry accepted by os(...) or as an
// #available platform argument.
type PlatformName struct {
	Name        string
	UsableInOS  bool // valid inside os(...)
	UsableInAvail bool // valid as an #available platform
}

var Platforms = []PlatformName{
	{Name: "OSX", UsableInOS: true, UsableInAvail: true},
	{Name: "macOS", UsableInOS: false, UsableInAvail: true},
	{Name: "iOS", UsableInOS: true, UsableInAvail: true},
	{Name: "watchOS", UsableInOS: true, UsableInAvail: true},
	{Name: "tvOS", UsableInOS: true, UsableInAvail: true},
	{Name: "Linux", UsableInOS: true, UsableInAvail: false},
}

// Architectures accepted by the arch(...) build-configuration predicate.
var Architectures = []string{"x86_64", "arm", "arm64", "i386", "powerpc64", "powerpc64le", "s390x"}

// IsKnownPlatform reports whether name is a recognized os(...) platform.
func IsKnownPlatform(name string) bool {
	for _, p := range Platforms {
		if p.Name == name {
			return true
		}
	}
	return false
}

// IsKnownArchitecture reports whether name is a recognized arch(...) value.
func IsKnownArchitecture(name string) bool {
	for _, a := range Architectures {
		if a == name {
			return true
		}
	}
	return false
}

package layout

const (
	// SettingsFileName is the file the configure stage writes its link
	// settings into.
	SettingsFileName = "config.cargo"

	// SettingsParentLevels is how many directory levels separate the build
	// output directory from the settings file.
	SettingsParentLevels = 7

	// BuildDirSetting names the setting holding the build tree root.
	BuildDirSetting = "BUILDDIR"
)

// searchPathSuffixes lists the in-tree build directories, relative to the
// build root, that hold the component archives. src/ext/keccak-tiny appears
// twice to match the original generator; SearchPathSuffixes collapses the
// repeat unless asked not to.
var searchPathSuffixes = []string{
	"src/common",
	"src/or",
	"src/ext/keccak-tiny",
	"src/ext/keccak-tiny",
	"src/ext/ed25519/ref10",
	"src/ext/ed25519/donna",
	"src/trunnel",
	"src/trace",
}

// staticComponents lists the in-tree archives in link order: a component must
// appear before the libraries it depends on. or-ctime-testing is listed twice
// on purpose; repeating an archive on the link line can affect symbol
// resolution, so the repeat is kept verbatim.
var staticComponents = []string{
	"tor-testing",
	"or-crypto-testing",
	"or-ctime-testing",
	"or-testing",
	"or-ctime-testing",
	"or-event-testing",
	"or-trunnel-testing",
	"or-trace",
	"curve25519_donna",
	"keccak-tiny",
	"ed25519_ref10",
	"ed25519_donna",
}

// ldflagsSettings are the external-library flag settings translated before
// the in-tree search paths and components.
var ldflagsSettings = []string{
	"TOR_LDFLAGS_zlib",
	"TOR_LDFLAGS_openssl",
	"TOR_LDFLAGS_libevent",
}

// trailingLibSettings are the library-list settings translated after the
// static components, in link order. The Windows entries (WS32, GDI, USERENV)
// are empty strings on other platforms and translate to nothing.
var trailingLibSettings = []string{
	"TOR_ZLIB_LIBS",
	"TOR_LIB_MATH",
	"TOR_LIBEVENT_LIBS",
	"TOR_OPENSSL_LIBS",
	"TOR_LIB_WS32",
	"TOR_LIB_GDI",
	"TOR_LIB_USERENV",
	"CURVE25519_LIBS",
	"TOR_SYSTEMD_LIBS",
	"TOR_LZMA_LIBS",
	"TOR_ZSTD_LIBS",
	"LIBS",
}

// SearchPathSuffixes returns a copy of the in-tree search-path suffixes in
// link order. When preserveDuplicates is false, repeated suffixes are
// collapsed to their first occurrence.
func SearchPathSuffixes(preserveDuplicates bool) []string {
	if preserveDuplicates {
		return clone(searchPathSuffixes)
	}

	seen := make(map[string]struct{}, len(searchPathSuffixes))
	out := make([]string, 0, len(searchPathSuffixes))
	for _, suffix := range searchPathSuffixes {
		if _, ok := seen[suffix]; ok {
			continue
		}
		seen[suffix] = struct{}{}
		out = append(out, suffix)
	}
	return out
}

// StaticComponents returns a copy of the in-tree component names in link order.
func StaticComponents() []string {
	return clone(staticComponents)
}

// LDFlagsSettings returns a copy of the pre-component flag setting names in
// translation order.
func LDFlagsSettings() []string {
	return clone(ldflagsSettings)
}

// TrailingLibSettings returns a copy of the post-component library setting
// names in translation order.
func TrailingLibSettings() []string {
	return clone(trailingLibSettings)
}

// RequiredSettings returns every setting name the emitter treats as
// mandatory.
func RequiredSettings() []string {
	out := make([]string, 0, 1+len(ldflagsSettings)+len(trailingLibSettings))
	out = append(out, BuildDirSetting)
	out = append(out, ldflagsSettings...)
	out = append(out, trailingLibSettings...)
	return out
}

func clone(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

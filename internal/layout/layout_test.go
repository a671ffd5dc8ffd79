package layout

import (
	"slices"
	"testing"
)

func TestSearchPathSuffixesDeduplication(t *testing.T) {
	t.Parallel()

	preserved := SearchPathSuffixes(true)
	collapsed := SearchPathSuffixes(false)

	if len(preserved) != len(collapsed)+1 {
		t.Fatalf("expected exactly one duplicate to collapse, got %d vs %d entries", len(preserved), len(collapsed))
	}

	count := 0
	for _, suffix := range preserved {
		if suffix == "src/ext/keccak-tiny" {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected src/ext/keccak-tiny twice in preserved list, got %d", count)
	}

	// Collapsing must keep first-occurrence order.
	want := []string{
		"src/common",
		"src/or",
		"src/ext/keccak-tiny",
		"src/ext/ed25519/ref10",
		"src/ext/ed25519/donna",
		"src/trunnel",
		"src/trace",
	}
	if !slices.Equal(collapsed, want) {
		t.Fatalf("unexpected collapsed suffixes: %v", collapsed)
	}
}

func TestStaticComponentsOrder(t *testing.T) {
	t.Parallel()

	got := StaticComponents()
	want := []string{
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
	if !slices.Equal(got, want) {
		t.Fatalf("component order changed: %v", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	got := StaticComponents()
	got[0] = "mutated"
	if StaticComponents()[0] != "tor-testing" {
		t.Fatalf("expected defensive copy from StaticComponents")
	}

	paths := SearchPathSuffixes(true)
	paths[0] = "mutated"
	if SearchPathSuffixes(true)[0] != "src/common" {
		t.Fatalf("expected defensive copy from SearchPathSuffixes")
	}
}

func TestRequiredSettings(t *testing.T) {
	t.Parallel()

	got := RequiredSettings()

	if got[0] != BuildDirSetting {
		t.Fatalf("expected %s first, got %s", BuildDirSetting, got[0])
	}
	if want := 1 + len(LDFlagsSettings()) + len(TrailingLibSettings()); len(got) != want {
		t.Fatalf("expected %d required settings, got %d", want, len(got))
	}

	seen := make(map[string]struct{}, len(got))
	for _, name := range got {
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate required setting %q", name)
		}
		seen[name] = struct{}{}
	}
	for _, name := range []string{"TOR_LDFLAGS_zlib", "TOR_ZSTD_LIBS", "LIBS"} {
		if _, ok := seen[name]; !ok {
			t.Fatalf("expected %q among required settings", name)
		}
	}
}

func TestTrailingLibSettingsOrder(t *testing.T) {
	t.Parallel()

	want := []string{
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
	if got := TrailingLibSettings(); !slices.Equal(got, want) {
		t.Fatalf("trailing setting order changed: %v", got)
	}
}

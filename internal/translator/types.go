package translator

// Kind distinguishes the two directive shapes.
type Kind int

const (
	// KindSearchPath adds a directory to the linker's library search list.
	KindSearchPath Kind = iota
	// KindLibrary links against a named library.
	KindLibrary
)

// Linkage selects how the linker resolves a library directive.
type Linkage int

const (
	// Dynamic requests the platform-default resolution.
	Dynamic Linkage = iota
	// Static requests a statically linked archive.
	Static
)

// String returns the lowercase linkage name.
func (l Linkage) String() string {
	if l == Static {
		return "static"
	}
	return "dynamic"
}

// Directive is a single instruction for the native linker: either a
// search-path addition or a library dependency. Directive order is
// significant everywhere it is used; it encodes static-link dependency
// order.
type Directive struct {
	Kind    Kind
	Path    string  // set for search-path directives
	Name    string  // set for library directives
	Linkage Linkage // meaningful for library directives only
}

// SearchPath builds a directive adding dir to the linker search list.
func SearchPath(dir string) Directive {
	return Directive{Kind: KindSearchPath, Path: dir}
}

// StaticLibrary builds a directive linking name as a static archive.
func StaticLibrary(name string) Directive {
	return Directive{Kind: KindLibrary, Name: name, Linkage: Static}
}

// DynamicLibrary builds a directive linking name with the platform-default
// resolution.
func DynamicLibrary(name string) Directive {
	return Directive{Kind: KindLibrary, Name: name, Linkage: Dynamic}
}

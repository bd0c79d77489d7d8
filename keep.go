// Package keep stores opaque blobs at a single location resolved once from a
// set of per-environment candidates: a filesystem path on desktop operating
// systems, a key in origin-scoped key/value storage in a sandboxed web
// environment. Application code names "the settings file" once, at
// configuration time, and then reads and writes it without branching on the
// runtime environment.
//
//	st := keep.New().
//		WithLinux("~/.config/app/settings.dat").
//		WithBrowser("app-settings").
//		WithGeneric("~/.app-settings.dat")
//
//	data, err := st.Read(ctx)
package keep

import "context"

// Store is a resolution record: up to six optional location candidates, one
// per target category, plus the backend that performs the I/O. Candidates are
// set through the With* mutators; an empty string means unset. A Store keeps
// no handle to an open file or connection between calls.
type Store struct {
	linux   string
	macos   string
	unix    string
	windows string
	generic string
	browser string

	target  Target
	backend Backend
}

// New returns a Store targeting the environment the binary was built for,
// using the default backend for that environment (filesystem natively,
// browser local storage under js/wasm).
func New() *Store {
	return &Store{target: currentTarget, backend: defaultBackend()}
}

// WithLinux sets the candidate used on Linux builds.
func (s *Store) WithLinux(path string) *Store {
	s.linux = path
	return s
}

// WithMacOS sets the candidate used on macOS builds.
func (s *Store) WithMacOS(path string) *Store {
	s.macos = path
	return s
}

// WithUnix sets the candidate used on unix-family builds, as a fallback for
// Linux and macOS.
func (s *Store) WithUnix(path string) *Store {
	s.unix = path
	return s
}

// WithWindows sets the candidate used on Windows builds.
func (s *Store) WithWindows(path string) *Store {
	s.windows = path
	return s
}

// WithGeneric sets the fallback candidate for every target. On the sandboxed
// web target it is not used verbatim: its 64-bit FNV-1a hash, in lowercase
// hex, becomes the storage key, since filesystem-shaped paths make poor flat
// store keys.
func (s *Store) WithGeneric(path string) *Store {
	s.generic = path
	return s
}

// WithBrowser sets the storage key used on sandboxed web builds.
func (s *Store) WithBrowser(key string) *Store {
	s.browser = key
	return s
}

// WithBackend replaces the backend performing the I/O. Useful for injecting
// a KVBackend over a persistent store, or a test double.
func (s *Store) WithBackend(b Backend) *Store {
	s.backend = b
	return s
}

// Filename resolves the record to the single location the backend will use:
// the first populated candidate in the active target's fallback chain. It
// returns ErrNoCandidate when the whole chain is empty, which indicates a
// misconfigured record rather than a runtime fault.
func (s *Store) Filename() (string, error) {
	return resolve(s, s.target)
}

// Exists reports whether the resolved location currently holds a value. It
// never creates the location.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	name, err := s.Filename()
	if err != nil {
		return false, err
	}
	return s.backend.Exists(ctx, name)
}

// Read returns the full content stored at the resolved location. A location
// that holds nothing yields an error wrapping ErrNotFound on every backend.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	name, err := s.Filename()
	if err != nil {
		return nil, err
	}
	return s.backend.Read(ctx, name)
}

// Write replaces the full content at the resolved location, creating it if
// absent. No atomicity is guaranteed beyond what the medium provides;
// concurrent writers race, last write wins.
func (s *Store) Write(ctx context.Context, data []byte) error {
	name, err := s.Filename()
	if err != nil {
		return err
	}
	return s.backend.Write(ctx, name, data)
}

package keep

import (
	"hash/fnv"
	"strconv"
)

// Target identifies the environment category a binary was built for. The
// active target is fixed at compile time by the target_*.go files; resolution
// is a pure function of the record and a target, so every fallback chain can
// be exercised on any host.
type Target int

const (
	// TargetLinux resolves linux, then unix, then generic.
	TargetLinux Target = iota
	// TargetMacOS resolves macos, then unix, then generic.
	TargetMacOS
	// TargetUnix covers the remaining unix family: unix, then generic.
	TargetUnix
	// TargetWindows resolves windows, then generic.
	TargetWindows
	// TargetBrowser resolves browser, then a hash of generic, against
	// origin-scoped key/value storage.
	TargetBrowser
	// TargetOther covers build targets outside every family (plan9 and
	// friends); only generic applies.
	TargetOther
)

func resolve(s *Store, t Target) (string, error) {
	switch t {
	case TargetLinux:
		return firstOf(s.linux, s.unix, s.generic)
	case TargetMacOS:
		return firstOf(s.macos, s.unix, s.generic)
	case TargetUnix:
		return firstOf(s.unix, s.generic)
	case TargetWindows:
		return firstOf(s.windows, s.generic)
	case TargetBrowser:
		if s.browser != "" {
			return s.browser, nil
		}
		if s.generic != "" {
			return hashKey(s.generic), nil
		}
		return "", ErrNoCandidate
	default:
		return firstOf(s.generic)
	}
}

func firstOf(candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return c, nil
		}
	}
	return "", ErrNoCandidate
}

// hashKey maps a filesystem-shaped generic candidate onto a flat key: the
// 64-bit FNV-1a of the string in lowercase hex. Stable across runs and free
// of path separators.
func hashKey(name string) string {
	h := fnv.New64a()
	h.Write([]byte(name))
	return strconv.FormatUint(h.Sum64(), 16)
}

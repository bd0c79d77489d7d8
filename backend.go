package keep

import "context"

// Backend performs existence checks, reads, and writes against a resolved
// location. Implementations are whole-value: Read returns everything stored
// at name, Write replaces it. Each call is a single request with no state
// retained between calls.
type Backend interface {
	Exists(ctx context.Context, name string) (bool, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

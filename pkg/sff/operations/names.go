package operations

import (
	"fmt"
	"strings"
)

// namedOperations maps CLI-facing names to operation IDs.
var namedOperations = map[string]uint8{
	"gzip":  OP_GZIP,
	"zlib":  OP_ZLIB,
	"bzip2": OP_BZIP2,
	"bz2":   OP_BZIP2,
}

// FromString resolves a registered operation by its lowercase name.
func FromString(name string) (Operation, error) {
	id, ok := namedOperations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown operation name: %q", name)
	}
	return Get(id)
}

// Names returns the accepted operation names, for CLI help text.
func Names() []string {
	return []string{"gzip", "zlib", "bzip2"}
}

package graph

import (
	"fmt"

	"github.com/minio/highwayhash"
)

// contentKey keys source content hashes, it must be highwayhash.Size bytes long
var contentKey = []byte("ngdeps:content-hash-key:00000000")

// Hash returns a 64-bit highwayhash of source content
func Hash(data []byte) (uint64, error) {
	if len(contentKey) != highwayhash.Size {
		return 0, fmt.Errorf("invalid content hash key size: %d", len(contentKey))
	}
	return highwayhash.Sum64(data, contentKey), nil
}

package entry

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// NewID produces an identifier unique with overwhelming probability within a
// single local store: the creation instant in base36 followed by a random
// base36 suffix. There is no cross-device uniqueness guarantee; the store is
// local-only so none is needed.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) +
		strconv.FormatUint(rand.Uint64(), 36)
}

package cache

import (
	"construction-estimator-service/internal/domain"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const keyPrefix = "estimate:breakdown:"

// KeyFor derives a stable cache key from the dimensions' canonical JSON encoding.
func KeyFor(dims domain.BuildingDimensions) (string, error) {
	b, err := json.Marshal(dims)
	if err != nil {
		return "", fmt.Errorf("cache key: encode dimensions: %w", err)
	}
	return keyPrefix + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

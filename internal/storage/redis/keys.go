package redis

import "fmt"

// Key prefix for all service data
const keyPrefix = "rpsls"

// challengersKey returns the Redis key for the LIST of challenger definitions.
// Each element is one JSON-encoded definition; list order is registry order.
func challengersKey() string {
	return fmt.Sprintf("%s:challengers", keyPrefix)
}

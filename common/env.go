package common

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetEnv reads key from the environment and parses it as T, falling back to
// defaultValue when the variable is unset. Supported T: string, int, uint16,
// uint32, time.Duration.
func GetEnv[T any](key string, defaultValue T) (T, error) {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}

	var err error
	var parsed any

	switch any(defaultValue).(type) {
	case string:
		return any(v).(T), nil
	case uint16:
		var p uint64
		p, err = strconv.ParseUint(v, 10, 16)
		parsed = uint16(p)
	case uint32:
		var p uint64
		p, err = strconv.ParseUint(v, 10, 32)
		parsed = uint32(p)
	case int:
		parsed, err = strconv.Atoi(v)
	case time.Duration:
		parsed, err = time.ParseDuration(v)
	default:
		return defaultValue, fmt.Errorf("unsupported type for env var %s: %T", key, defaultValue)
	}

	if err != nil {
		return defaultValue, fmt.Errorf("failed to parse env %s as %T: %w", key, defaultValue, err)
	}
	return parsed.(T), err
}

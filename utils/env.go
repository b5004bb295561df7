package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvAs looks up key and converts it with parse. Unset, blank or
// unparsable values fall back to defaultVal.
func getEnvAs[T any](key string, defaultVal T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultVal
	}
	result, err := parse(strings.TrimSpace(value))
	if err != nil {
		logger.Warningf("ignoring %s=%q: %v", key, value, err)
		return defaultVal
	}
	return result
}

func GetEnvAsInt(key string, defaultVal int) int {
	return getEnvAs(key, defaultVal, strconv.Atoi)
}

func GetEnvAsInt64(key string, defaultVal int64) int64 {
	return getEnvAs(key, defaultVal, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// GetEnvAsDuration accepts Go durations ("15s") or a bare number of seconds.
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	return getEnvAs(key, defaultVal, func(s string) (time.Duration, error) {
		if seconds, err := strconv.Atoi(s); err == nil {
			return time.Duration(seconds) * time.Second, nil
		}
		return time.ParseDuration(s)
	})
}

func GetEnvAsBool(key string, defaultVal bool) bool {
	return getEnvAs(key, defaultVal, strconv.ParseBool)
}

func GetEnvAsString(key string, defaultVal string) string {
	return getEnvAs(key, defaultVal, func(s string) (string, error) { return s, nil })
}

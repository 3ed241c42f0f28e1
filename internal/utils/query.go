package utils

import (
	"net/http"
	"strconv"
)

// GetQueryParam reads a query parameter, falling back to defaultVal when it is
// absent or, for ints, negative or unparsable.
func GetQueryParam[T string | int](r *http.Request, key string, defaultVal T) T {
	qVal := r.URL.Query().Get(key)
	if qVal == "" {
		return defaultVal
	}
	var result T
	switch any(result).(type) {
	case string:
		return any(qVal).(T)
	case int:
		intVal, err := strconv.Atoi(qVal)
		if err != nil || intVal < 0 {
			return defaultVal
		}
		result = any(intVal).(T)
	}

	return result
}

// ClampPage bounds limit/offset pagination parameters.
func ClampPage(limit, offset, maxLimit int) (int, int) {
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func Ptr[T any](v T) *T {
	return &v
}

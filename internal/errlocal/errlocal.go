package errlocal

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const (
	messagePrefix = "message: "
	systemPrefix  = "system: "
	detailsPrefix = "details: "
)

// Systems reported in LocalError.System.
const (
	SystemStore      = "store"
	SystemFileStore  = "filestore"
	SystemAuth       = "auth"
	SystemAPI        = "api"
	SystemRecognizer = "recognizer"
	SystemStats      = "stats"
	SystemCatalog    = "catalog"
)

type LocalError interface {
	error
	Message() string
	System() string
	Details() map[string]any
	Code() int
	Base() *BaseError
}

type BaseError struct {
	Msg        string         `json:"message,omitempty"`
	Sys        string         `json:"system,omitempty"`
	DetailsMap map[string]any `json:"details,omitempty"`
}

func (e *BaseError) Error() string {
	b := strings.Builder{}
	if e.Msg != "" {
		b.WriteString(messagePrefix + e.Msg)
	}
	if e.Sys != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(systemPrefix + e.Sys)
	}
	if len(e.DetailsMap) > 0 {
		keys := make([]string, 0, len(e.DetailsMap))
		for key := range e.DetailsMap {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteByte(' ')
		b.WriteString(detailsPrefix)
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(key + ": " + fmt.Sprintf("%v", e.DetailsMap[key]))
		}
	}
	return b.String()
}

func (e *BaseError) Message() string {
	return e.Msg
}

func (e *BaseError) System() string {
	return e.Sys
}

func (e *BaseError) Details() map[string]any {
	return e.DetailsMap
}

func (e *BaseError) Code() int {
	return http.StatusInternalServerError
}

func (e *BaseError) Base() *BaseError {
	return e
}

// As unwraps err into a LocalError if one is in its chain.
func As(err error) (LocalError, bool) {
	var local LocalError
	if errors.As(err, &local) {
		return local, true
	}
	return nil, false
}

// CodeOf returns the HTTP status carried by err, 500 for foreign errors.
func CodeOf(err error) int {
	if local, ok := As(err); ok {
		return local.Code()
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return CodeOf(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return CodeOf(err) == http.StatusConflict
}

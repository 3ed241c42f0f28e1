package errlocal

import "net/http"

func base(msg, system string, details map[string]any) BaseError {
	return BaseError{Msg: msg, Sys: system, DetailsMap: details}
}

type ErrBadRequest struct {
	BaseError
}

func NewErrBadRequest(msg string, system string, details map[string]any) LocalError {
	return &ErrBadRequest{BaseError: base(msg, system, details)}
}

func (e *ErrBadRequest) Code() int {
	return http.StatusBadRequest
}

type ErrUnauthorized struct {
	BaseError
}

func NewErrUnauthorized(msg string, system string, details map[string]any) LocalError {
	return &ErrUnauthorized{BaseError: base(msg, system, details)}
}

func (e *ErrUnauthorized) Code() int {
	return http.StatusUnauthorized
}

type ErrForbidden struct {
	BaseError
}

func NewErrForbidden(msg string, system string, details map[string]any) LocalError {
	return &ErrForbidden{BaseError: base(msg, system, details)}
}

func (e *ErrForbidden) Code() int {
	return http.StatusForbidden
}

type ErrNotFound struct {
	BaseError
}

func NewErrNotFound(msg string, system string, details map[string]any) LocalError {
	return &ErrNotFound{BaseError: base(msg, system, details)}
}

func (e *ErrNotFound) Code() int {
	return http.StatusNotFound
}

// ErrConflict is returned on unique violations and on stale profile or swarm
// versions.
type ErrConflict struct {
	BaseError
}

func NewErrConflict(msg string, system string, details map[string]any) LocalError {
	return &ErrConflict{BaseError: base(msg, system, details)}
}

func (e *ErrConflict) Code() int {
	return http.StatusConflict
}

type ErrTooManyRequests struct {
	BaseError
}

func NewErrTooManyRequests(msg string, system string) LocalError {
	return &ErrTooManyRequests{BaseError: base(msg, system, nil)}
}

func (e *ErrTooManyRequests) Code() int {
	return http.StatusTooManyRequests
}

type ErrInternal struct {
	BaseError
}

func NewErrInternal(msg string, system string, details map[string]any) LocalError {
	return &ErrInternal{BaseError: base(msg, system, details)}
}

func (e *ErrInternal) Code() int {
	return http.StatusInternalServerError
}

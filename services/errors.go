package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Failure codes returned to callers. Controllers translate these to HTTP
// statuses; anything that is not a *Failure is an unexpected server fault.
const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeNoRooms    = "no_rooms"
	CodeConflict   = "conflict"
)

// Failure is a terminal, user-visible outcome of a service operation.
type Failure struct {
	Code    string
	Message string
}

func (f *Failure) Error() string {
	return f.Code + ": " + f.Message
}

// AsFailure unwraps err into a *Failure if it is one.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func failValidation(msg string) *Failure { return &Failure{Code: CodeValidation, Message: msg} }
func failNotFound(msg string) *Failure   { return &Failure{Code: CodeNotFound, Message: msg} }
func failNoRooms(msg string) *Failure    { return &Failure{Code: CodeNoRooms, Message: msg} }
func failConflict(msg string) *Failure   { return &Failure{Code: CodeConflict, Message: msg} }

// isDuplicateErr reports whether err is a uniqueness-constraint violation.
// Only these are retryable during allocation; any other storage error is a
// structural fault and must surface to the caller.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// MySQL: "Duplicate entry ... for key ...", SQLite: "UNIQUE constraint failed: ..."
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed")
}

package infra

import (
	"errors"

	"slotbooking/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(kind StoreErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound     StoreErrorKind = "NOT_FOUND"
	KindStoreFailure StoreErrorKind = "STORE_FAILURE"
)

package session

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophdrop/internal/formatx"
)

// Messages recorded in State.LastError.
const (
	MsgLoadFailed     = "Failed to load files. Please try again."
	MsgUploadFailed   = "Failed to upload file. Please try again."
	MsgDeleteFailed   = "Failed to delete file. Please try again."
	MsgFileLoadFailed = "File not found or unable to load"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrLoadFailed      = errors.New("load failed")

	ErrUploadInProgress      = errors.New("upload already in progress")
	ErrUploadNotAcknowledged = errors.New("previous upload outcome not acknowledged")
	ErrDeleteInProgress      = errors.New("delete already in progress")
	ErrEmptyID               = errors.New("empty file id")
)

// UnsupportedTypeError is returned by Upload before any network call when
// the file extension is not accepted.
type UnsupportedTypeError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return "File type not supported. Supported types: " + strings.Join(formatx.SupportedExtensions(), ", ")
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// LoadError is returned by LoadOne when the file record cannot be fetched.
type LoadError struct {
	ID  string
	Err error
}

func (e *LoadError) Error() string {
	return MsgFileLoadFailed
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

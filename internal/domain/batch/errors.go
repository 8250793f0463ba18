package batch

import "errors"

var (
	ErrBatchNotFound   = errors.New("upload batch not found")
	ErrEmptyRoster     = errors.New("roster file contains no data rows")
	ErrMissingColumns  = errors.New("roster file is missing required columns")
	ErrUnsupportedFile = errors.New("only CSV roster files are supported")
)

package types

import "fmt"

// OutOfBoundsError is returned when an accessor reads beyond the
// source's total size.
type OutOfBoundsError struct {
	What   string
	Offset int64
	Length int64
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("offset %d out of bounds (source size: %d) while reading %s",
			e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("read of %d bytes at offset %d would exceed source size %d while reading %s",
		e.Length, e.Offset, e.Size, e.What)
}

// NotLoadedError is returned when an accessor touches bytes that no
// LoadRange call has materialized yet.
type NotLoadedError struct {
	Offset int64
	Length int64
}

func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("range [%d, %d] has not been loaded", e.Offset, e.Offset+e.Length-1)
}

// UnsupportedFormatError is returned when the source does not carry the
// M4A tag signature.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("unsupported format: %s", e.Reason)
}

// RangeRequestError is returned when a source fails to materialize a
// requested byte range. It aborts the load pass immediately.
type RangeRequestError struct {
	Range Range
	Err   error
}

func (e *RangeRequestError) Error() string {
	return fmt.Sprintf("load range [%d, %d]: %v", e.Range.Start, e.Range.End, e.Err)
}

func (e *RangeRequestError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered while mapping
// decoded values to semantic fields.
//
// Warnings never stop extraction; they are collected in File.Warnings.
type Warning struct {
	// Stage where the warning occurred ("mapping", "artwork")
	Stage string

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

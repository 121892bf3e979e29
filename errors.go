package m4atag

import (
	"github.com/dmercer/m4atag/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exported from internal/types to keep one error taxonomy.
type OutOfBoundsError = types.OutOfBoundsError

// NotLoadedError is an alias to types.NotLoadedError.
// Re-exported from internal/types to keep one error taxonomy.
type NotLoadedError = types.NotLoadedError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exported from internal/types to keep one error taxonomy.
type UnsupportedFormatError = types.UnsupportedFormatError

// RangeRequestError is an alias to types.RangeRequestError.
// Re-exported from internal/types to keep one error taxonomy.
type RangeRequestError = types.RangeRequestError

// Warning is an alias to types.Warning.
// Re-exported from internal/types to keep one error taxonomy.
type Warning = types.Warning

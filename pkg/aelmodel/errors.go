package aelmodel

import "errors"

// ErrMissingField is returned by accessors that require their key to be present in the
// entity data, currently the rating getter and HasAssetCompat.
var ErrMissingField = errors.New("missing field")

// ErrInvalidValue is returned when a stored value cannot be read as the accessor's type.
var ErrInvalidValue = errors.New("invalid value")

package namegen

import "errors"

var (
	// ErrNotLoaded is returned when generation or inspection is attempted
	// before any dataset has been loaded successfully.
	ErrNotLoaded = errors.New("no dataset loaded")

	// ErrDataMissing is returned by Load when a required candidate pool is
	// empty after filtering. The wrapped message names the empty role.
	ErrDataMissing = errors.New("required name data missing")

	// ErrEmptyPool is returned by Generate when the requested source
	// filter leaves a candidate pool empty. The dataset itself remains
	// valid for other filters.
	ErrEmptyPool = errors.New("candidate pool is empty")

	// ErrInvalidFilter is returned when a source filter is not one of
	// FilterAll, FilterBase, or FilterExpanded.
	ErrInvalidFilter = errors.New("invalid source filter")
)

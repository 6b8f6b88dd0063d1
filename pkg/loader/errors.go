package loader

import "errors"

var (
	// ErrSourceAbsent marks a word-list file that does not exist at its
	// manifest location. Absent optional files are expected and skipped.
	ErrSourceAbsent = errors.New("source file absent")

	// ErrFetchFailed wraps transport and I/O failures other than absence.
	ErrFetchFailed = errors.New("failed to fetch source file")

	// ErrInvalidManifest is returned for manifests that cannot describe a
	// loadable dataset (no sources, unknown base tag, duplicate tags).
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrInvalidSelection is returned when the race/sex selection is
	// incomplete.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the loader config.
	ErrParsingConfig = errors.New("failed to parse loader config")
)

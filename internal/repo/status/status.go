// Package status exports errors produced by the versioning engine.
package status

import "errors"

var (
	// ErrNotInitialized indicates an operation other than init was run
	// before the repository was initialized
	ErrNotInitialized = errors.New("repository is not initialized")

	// ErrAlreadyInitialized indicates init was run on an initialized directory
	ErrAlreadyInitialized = errors.New("repository is already initialized")

	// ErrNoFileSpecified indicates a mutating operation is missing its file argument
	ErrNoFileSpecified = errors.New("no file specified")

	// ErrFileNotFound indicates the working-directory source file is absent
	ErrFileNotFound = errors.New("file not found in working directory")

	// ErrNotTracked indicates the named file is not part of the latest version
	ErrNotTracked = errors.New("file is not tracked")

	// ErrInvalidVersion indicates a non-numeric or out-of-range version number
	ErrInvalidVersion = errors.New("invalid version number")

	// ErrVersionExists indicates a version directory is already present,
	// which cannot happen under correct sequencing
	ErrVersionExists = errors.New("version directory already exists")

	// ErrCorruptRepository indicates a counter file is missing or unparseable
	ErrCorruptRepository = errors.New("repository is corrupted")
)

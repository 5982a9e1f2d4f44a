// SPDX-License-Identifier: MIT

package campus

import "errors"

var (
	// ErrMalformedLine indicates an edge line that does not match the walkway format.
	ErrMalformedLine = errors.New("campus: malformed walkway line")

	// ErrFileNotFound indicates that the data file could not be opened because it does not exist.
	ErrFileNotFound = errors.New("campus: data file not found")

	// ErrNilService is returned by methods called on a nil *Service.
	ErrNilService = errors.New("campus: service is nil")
)

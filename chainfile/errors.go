// SPDX-License-Identifier: MIT
package chainfile

import "errors"

var (
	// ErrInvalidInput indicates text that is not a state list or a number.
	ErrInvalidInput = errors.New("chainfile: invalid input")

	// ErrUnknownFormat indicates a file extension other than .hcl, .yaml or .yml.
	ErrUnknownFormat = errors.New("chainfile: unknown file format")

	// ErrChainNotFound indicates a file without chains or without the requested name.
	ErrChainNotFound = errors.New("chainfile: chain not found")
)

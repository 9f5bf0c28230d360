// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error sentinels for the analysis pipeline. Degenerate but well-formed
// inputs (empty corpus, zero sentences) are not errors; components return
// empty results for those instead.
var (
	// ErrInputInvalid marks malformed or missing required input fields.
	ErrInputInvalid = errors.New("invalid input")

	// ErrModelNotFitted marks a prediction request made before any
	// training call and before any model was loaded from the store.
	ErrModelNotFitted = errors.New("model not fitted")
)

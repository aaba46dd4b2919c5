package diagram

import "errors"

// ErrInvalidInput is returned when the submitted text does not look like
// diagram source of any supported family. The renderer is never invoked.
var ErrInvalidInput = errors.New("input does not appear to be mermaid source")

// ErrInvalidArgument is returned when a render parameter is outside its
// allowed range or enum. Checked before any invocation.
var ErrInvalidArgument = errors.New("invalid render argument")

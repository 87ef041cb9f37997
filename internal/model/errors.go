package model

import "errors"

// ErrInvalidCycleAnchor is returned when cycle anchor parameters are out
// of range or inconsistent. Construction fails fast so invalid anchors
// never reach the scheduling engine.
var ErrInvalidCycleAnchor = errors.New("invalid cycle anchor")

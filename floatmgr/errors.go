package floatmgr

import "errors"

// ErrImageNotReady is returned internally by shape construction when an
// image() shape-outside's source image isn't decoded yet. AddFloat never
// surfaces it to its caller: the float is registered without a shape and a
// later reflow may retry.
var ErrImageNotReady = errors.New("floatmgr: shape-outside image not ready")

package environment

import "errors"

// ErrResolution is returned (wrapped) by a [Resolver] that rejects the given
// environment name. The resolvers shipped with this package accept every
// input; custom policies should wrap this sentinel so callers can match the
// failure with [errors.Is].
var ErrResolution = errors.New("cannot resolve environment")

package properties

import "errors"

// ErrMalformed is wrapped by every [Provider] when the input cannot be
// parsed as the provider's format. Callers match it with [errors.Is].
var ErrMalformed = errors.New("malformed configuration content")

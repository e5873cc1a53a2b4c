package discovery

import "errors"

// ErrIO is wrapped by [FilesProvider] implementations when the filesystem
// fails for a reason other than absence (for example, permission denied).
// A missing root directory or config file is never an error — it simply
// yields no files.
var ErrIO = errors.New("config file discovery failed")

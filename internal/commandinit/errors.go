package commandinit

import "errors"

// ErrCommandFailed is returned by a command action after the cause has been
// logged.
var ErrCommandFailed = errors.New("command failed")

package core

import "errors"

var ErrAlreadyExists = errors.New("already exists")
var ErrBadArguments = errors.New("arguments are not acceptable")

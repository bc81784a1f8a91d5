package coverletters

import "errors"

var ErrInvalidInput = errors.New("invalid input")

package output

import "errors"

var ErrUnknownFormat = errors.New("unknown image format")

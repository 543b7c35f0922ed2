package envfile

import "errors"

var (
	// ErrMalformedConfig indicates that the configuration file is not valid
	// JSON. The loader logs it and continues with an empty configuration.
	ErrMalformedConfig = errors.New("malformed configuration file")
	// ErrNotAnObject indicates valid JSON whose top-level value is not an
	// object. It is treated like ErrMalformedConfig.
	ErrNotAnObject = errors.New("configuration file is not a JSON object")
)

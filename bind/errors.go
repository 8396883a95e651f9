package bind

import "fmt"

// ArityError reports a token count that cannot satisfy the signature: fewer
// tokens than required parameters, or more tokens than parameters when no
// trailing catch-all can absorb the surplus. Expected is the minimum required
// count, or the maximum capacity when TooMany is set.
type ArityError struct {
	Expected int
	Got      int
	TooMany  bool
}

func (e *ArityError) Error() string {
	if e.TooMany {
		return fmt.Sprintf("too many arguments: got %d, takes at most %d", e.Got, e.Expected)
	}
	return fmt.Sprintf("too few arguments: got %d, need at least %d", e.Got, e.Expected)
}

// SignatureError reports a malformed parameter signature, e.g. a catch-all
// parameter that is not last. Like convert.ConfigError it is a setup defect,
// not bad user input.
type SignatureError struct {
	Param  string
	Reason string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("bad signature at %q: %s", e.Param, e.Reason)
}

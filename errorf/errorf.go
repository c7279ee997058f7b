// Package errorf exposes the lol.Main logged error constructors under short
// names: errorf.E("bad %s", x) prints at error level and returns the error.
package errorf

import (
	"jcs.mleku.dev/lol"
)

var F, E, W, I, D, T lol.Err

func init() {
	e := lol.Main.Errorf
	F, E, W, I, D, T = e.F, e.E, e.W, e.I, e.D, e.T
}

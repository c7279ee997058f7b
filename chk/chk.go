// Package chk exposes the lol.Main error checkers under short names, so a
// call site reads as `if err = do(); chk.E(err) { return }`.
package chk

import (
	"jcs.mleku.dev/lol"
)

var F, E, W, I, D, T lol.Chk

func init() {
	c := lol.Main.Check
	F, E, W, I, D, T = c.F, c.E, c.W, c.I, c.D, c.T
}

// Package log exposes the lol.Main level printers under short names.
package log

import (
	"jcs.mleku.dev/lol"
)

var F, E, W, I, D, T lol.LevelPrinter

func init() {
	l := lol.Main.Log
	F, E, W, I, D, T = l.F, l.E, l.W, l.I, l.D, l.T
}

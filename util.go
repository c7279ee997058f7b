package jcs

import (
	"jcs.mleku.dev/lol"
)

var (
	log, chk = lol.Main.Log, lol.Main.Check
)

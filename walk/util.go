package walk

import (
	"jcs.mleku.dev/lol"
)

var (
	log, chk = lol.Main.Log, lol.Main.Check
)

// Command num512 is a small calculator over the 512-bit engine. Operands are
// parsed with U512FromString, so 0x, 0o and 0b prefixes are accepted.
package main

import (
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
)

func main() {
	log.SetHandler(clihander.Default)

	if err := newRootCmd().Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

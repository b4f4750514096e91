// Command lvlkit exposes the lvlkit algorithms on the command line.
//
//	lvlkit encode "heloooooooo there"
//	lvlkit decode "hel8o there"
//	lvlkit substr -k 2 "abcabdab"
//	lvlkit date "January 15, 2022"
//	lvlkit paths --method both ... .X. ...
//	lvlkit paths --file field.yaml
//
// Failures are logged as JSON on stderr and exit with status 1.
package main

import (
	"os"
)

func main() {
	a := newApp()
	if err := a.execute(a.rootCmd()); err != nil {
		os.Exit(1)
	}
}

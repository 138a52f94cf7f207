// Command rattrig evaluates rational trigonometry formulas from the command
// line.
//
// Numbers are read from the arguments, or from stdin when there are none, one
// "x y" pair per line as in:
//
//	printf '1 2\n3 4\n' | rattrig vectors
//	rattrig vectors 1 2 3 4 --png /tmp/vectors.png --imgcat
//	rattrig triangle 5 25 20
//	rattrig triple-quad 5 25 4/125
//	rattrig points 0 0 3 0 0 4 -V
//	rattrig --domain float triangle 2 4 6
//
// By default numbers are exact rationals, so "0.1" means 1/10.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

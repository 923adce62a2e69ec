package main

import (
	"os"
)

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.shutdown()

	if err != nil {
		os.Exit(1)
	}
}

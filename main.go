package main

import (
	"os"

	"github.com/vipcxj/divedns/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

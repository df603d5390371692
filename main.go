package main

import (
	"os"

	"github.com/objid/objid/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

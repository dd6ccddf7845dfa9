package main

import (
	"os"

	"github.com/navportal/navportal/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

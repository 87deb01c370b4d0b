package main

import (
	"os"

	"github.com/portfolio-admin/portfolio-admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Package main provides the entry point for the randtok command line tool.
// It generates random tokens from a configurable alphabet and can run a small
// http service handing tokens out over GET /token.
package main

import (
	"os"

	"github.com/randtok/randtok/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

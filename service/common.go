package service

import (
	"fmt"

	"quickblog/app/config"
)

// loadConfig is a variable so tests can point commands at temporary paths.
var loadConfig = config.Load

// confirm asks a yes/no question on stdout and reads the answer from stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}

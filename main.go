package main

import (
	"fmt"
	"os"
	"strings"

	"quickblog/service"
)

const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the subcommand named in os.Args.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("quickblog version %s\n", CliVersion)
	case "serve":
		if code := service.RunAppServer(os.Args[2:]); code != 0 {
			exit(code)
		}
	case "db":
		if code := service.HandleCommand(os.Args[2:]); code != 0 {
			exit(code)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: quickblog <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--port <port>]          Run the blog API server.
  db <init|clean|backup|restore <file>>
                                 Maintain the badger database.

Configuration is read from .env, quickblog.{yaml,json,toml} and the environment.
`
	fmt.Println(helpText)
}

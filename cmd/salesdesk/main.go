// Package main is the entrypoint for salesdesk.
package main

import "github.com/tutu-network/salesdesk/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}

package main

import "github.com/wildlog/wildlog_api/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}

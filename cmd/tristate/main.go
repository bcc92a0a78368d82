// Package main provides the tristate CLI.
package main

import "github.com/mesh-intelligence/tristate/internal/cli"

func main() {
	cli.Execute()
}

// Package main provides the gildedrose CLI.
package main

import "github.com/mesh-intelligence/gildedrose/internal/cli"

func main() {
	cli.Execute()
}

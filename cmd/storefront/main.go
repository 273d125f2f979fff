package main

import "github.com/dwikikusuma/storefront/internal/cli"

func main() {
	cli.Execute()
}

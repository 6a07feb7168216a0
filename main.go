// Package main is the entry point for the regren CLI.
package main

import "regren.dev/pkg/regren/cmd"

func main() {
	cmd.Execute()
}

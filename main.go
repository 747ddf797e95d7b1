// Package main is the entry point for the shepherd CLI.
package main

import "shepherd.dev/pkg/shepherd/cmd"

func main() {
	cmd.Execute()
}

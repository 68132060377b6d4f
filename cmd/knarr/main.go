/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/bjornk/knarr/cmd/knarr/cmd"
)

func main() {
	cmd.Execute()
}

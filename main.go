/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "traitscope/cmd"

func main() {
	cmd.Execute()
}

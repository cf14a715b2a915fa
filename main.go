/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Ashupap/ShorelineVision-sub000/cmd"

func main() {
	cmd.Execute()
}

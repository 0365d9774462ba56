/*
	Copyright 2023 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/f1gp-track-go/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/alexiusacademia/antgeom/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/shalekchaye/dwg2glb/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/bgraf/gopro2gpx/cmd"

func main() {
	cmd.Execute()
}

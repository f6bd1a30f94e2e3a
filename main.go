package main

import "fleetworks/fleetenv/cmd"

func main() {
	cmd.Execute()
}

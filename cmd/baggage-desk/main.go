package main

import "github.com/oshokin/baggage-desk/cmd/baggage-desk/cmd"

func main() {
	cmd.Execute()
}

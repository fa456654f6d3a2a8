package main

import "github.com/oshokin/baggage-desk/cmd/baggage-replay/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/oshokin/baggage-desk/cmd/baggage-server/cmd"

func main() {
	cmd.Execute()
}

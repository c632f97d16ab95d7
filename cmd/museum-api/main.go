package main

import "github.com/Jasch-M/asyncmuseum/cmd/museum-api/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/saadjs/runnutri/cmd/runnutri"

func main() {
	runnutri.Execute()
}

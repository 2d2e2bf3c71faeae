package main

import "github.com/coledrain/go-dateinfer/cmd/dateinfer/cmd"

func main() {
	cmd.Execute()
}

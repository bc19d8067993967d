package main

import "github.com/nikogura/folio/cmd"

func main() {
	cmd.Execute()
}

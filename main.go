package main

import "github.com/deploymenttheory/go-apfs-format/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"noteboard-backend/cmd/noteboard-cli/cmd"
)

func main() {
	cmd.Execute()
}

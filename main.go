package main

import "github.com/charmbracelet/pal/internal/cmd"

func main() {
	cmd.Execute()
}

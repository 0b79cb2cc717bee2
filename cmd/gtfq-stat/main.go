// cmd/gtfq-stat/main.go
package main

import (
	"gtfq/internal/appshell"
	"gtfq/internal/statapp"
)

func main() {
	appshell.Main(statapp.RunContext)
}

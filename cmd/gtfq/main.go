// cmd/gtfq/main.go
package main

import (
	"gtfq/internal/app"
	"gtfq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

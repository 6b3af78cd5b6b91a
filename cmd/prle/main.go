// cmd/prle/main.go
package main

import (
	"prle/internal/app"
	"prle/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

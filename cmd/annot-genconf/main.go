// cmd/annot-genconf/main.go
package main

import (
	"annotkit/internal/appshell"
	"annotkit/internal/confapp"
)

func main() {
	appshell.Main(confapp.RunContext)
}

// cmd/annot-importref/main.go
package main

import (
	"annotkit/internal/appshell"
	"annotkit/internal/refapp"
)

func main() {
	appshell.Main(refapp.RunContext)
}

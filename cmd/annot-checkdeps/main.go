// cmd/annot-checkdeps/main.go
package main

import (
	"annotkit/internal/appshell"
	"annotkit/internal/depsapp"
)

func main() {
	appshell.Main(depsapp.RunContext)
}

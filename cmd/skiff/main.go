package main

import (
	"github.com/skiff-ml/skiff/pkg/cli"
	"github.com/skiff-ml/skiff/pkg/util/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err = cmd.Execute(); err != nil {
		console.Fatalf("%s", err)
	}
}

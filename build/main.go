// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"github.com/curioswitch/go-build"
	"github.com/curioswitch/go-curiostack/tasks"
	"github.com/goyek/x/boot"
)

// Runs lint, format and test tasks for the server and fokusctl, e.g.
// go run ./build -v lint.
func main() {
	tasks.DefineServer()
	build.DefineTasks()
	boot.Main()
}

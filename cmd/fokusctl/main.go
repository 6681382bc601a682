// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"log"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

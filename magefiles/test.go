// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const fuzzTime = "30s"

// Test groups test targets (all, unit, fuzz).
type Test mg.Namespace

// All runs all tests with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "-v", "./...")
}

// Unit runs the tests without verbose output.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "./...")
}

// Fuzz runs the inventory updater fuzz target for fuzzTime.
func (Test) Fuzz() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-fuzz", "^FuzzAdvanceOneDay$", "-fuzztime", fuzzTime, "./pkg/rose")
}

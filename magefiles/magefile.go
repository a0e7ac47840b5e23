//go:build mage

// Package main provides build targets for the fixedarray project using Mage.
//
// Usage:
//
//	mage build      Compile the arraydemo binary to bin/
//	mage test       Run all tests
//	mage race       Run all tests with the race detector
//	mage bench      Run benchmarks for the root package
//	mage lint       Run golangci-lint
//	mage generate   Regenerate backing_gen.go
//	mage demo       Build and run arraydemo
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "arraydemo"
	binaryDir  = "bin"
	cmdDir     = "./cmd/arraydemo"
)

// Build compiles the arraydemo binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs all tests with the race detector.
func Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the root package benchmarks.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Generate regenerates the Backing constraint.
func Generate() error {
	return sh.RunV(binGo, "generate", ".")
}

// Demo builds arraydemo and runs both demo commands.
func Demo() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	if err := sh.RunV(bin, "run"); err != nil {
		return err
	}
	// empty always exits 1 after reporting the length error.
	_ = sh.RunV(bin, "empty")
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

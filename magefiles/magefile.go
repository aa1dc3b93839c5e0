//go:build mage

// Package main contains Mage build targets for exhibitkit developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "exhibitkit"
	cmdPkg  = "./cmd/exhibitkit"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the test suite.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install builds the binary and copies it into GOBIN (or GOPATH/bin).
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", cmdPkg)
}

// Clean removes build artifacts.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return fmt.Errorf("removing %s: %w", binDir, err)
	}
	fmt.Println("Cleaned.")
	return nil
}

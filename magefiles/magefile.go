//go:build mage

// Package main contains Mage build targets for calculator-api.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "calculator-api"
	sitemapDir = "sitemaps"
)

// Build compiles the binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X calculator-api/cli.Version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, "."); err != nil {
		return err
	}
	fmt.Println("Built", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Sitemap builds the binary and regenerates the sitemaps into sitemaps/.
func Sitemap() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "sitemap", "--out", sitemapDir)
}

// Serve builds the binary and runs the API locally.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve")
}

// Clean removes build output and generated sitemaps.
func Clean() error {
	for _, dir := range []string{binDir, sitemapDir} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

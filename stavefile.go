//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binary  = "bin/eslintgen"
	fixture = "pkg/ruledoc/testdata/rules.html"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"gen": Gen.Fixture,
}

// Namespace types group related targets.
type (
	Test st.Namespace
	Lint st.Namespace
	Gen  st.Namespace
)

// Build compiles eslintgen with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building eslintgen...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/eslintgen")
}

// Check runs lint, tests and a fixture generation.
func Check() {
	st.SerialDeps(Lint.Default, Test.Default, Gen.Fixture)
}

// Clean removes build output and generated files.
func Clean() error {
	for _, path := range []string{"bin", "dist", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs eslintgen to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing eslintgen...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/eslintgen")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	fmt.Println("Running tests...")
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Bench runs the extractor and renderer benchmarks.
func (Test) Bench() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./pkg/ruledoc/", "./pkg/render/")
}

// Default checks formatting and runs go vet.
func (Lint) Default() error {
	st.SerialDeps(Lint.Fmt, Lint.Vet)
	return nil
}

// Fmt fails when any file is not gofmt-formatted.
func (Lint) Fmt() error {
	out, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg", "stavefile.go")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// Vet runs go vet, including the stavefile.
func (Lint) Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "-tags", "stave", "./...")
}

// Fixture writes every starter file from the bundled rules page to dist/fixture.
func (Gen) Fixture() error {
	st.Deps(Build)
	fmt.Println("Generating starter files from fixture...")
	return sh.RunV(binary, "--source", fixture, "--output-dir", filepath.Join("dist", "fixture"))
}

// Formats writes each filetype on its own, with a custom stem, to dist/formats.
func (Gen) Formats() error {
	st.Deps(Build)
	for _, filetype := range []string{"js", "json", "yaml"} {
		if err := sh.RunV(binary, filetype, "sample",
			"--source", fixture, "--output-dir", filepath.Join("dist", "formats"), "--quiet"); err != nil {
			return fmt.Errorf("generate %s: %w", filetype, err)
		}
	}
	return nil
}

// Live writes every starter file from eslint.org to dist/live.
func (Gen) Live() error {
	st.Deps(Build)
	fmt.Println("Generating starter files from eslint.org...")
	return sh.RunV(binary, "--timeout", "30s", "--output-dir", filepath.Join("dist", "live"))
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}

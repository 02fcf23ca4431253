// Package run implements the main logic for the doublegen tool in a testable
// way.
package run

import (
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
)

// Interfaces - Public

// FileSystem interface for mocking file writes.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader interface for loading Go packages as syntax trees.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, *token.FileSet, error)
}

// Structs - Private

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Interface string `arg:"positional,required" help:"interface to double (e.g. Store or pkg.Store)"`
	Name      string `arg:"--name"              help:"name for the generated double (defaults to <Interface>Double)"`
}

// generatorInfo holds information gathered for generation.
type generatorInfo struct {
	pkgName, interfaceName, localInterfaceName, doubleName string
}

// Functions - Public

// Run executes the doublegen tool logic. It takes command-line arguments, an
// environment variable getter, a FileSystem for file writes, a PackageLoader
// for package parsing, and a writer for progress output. On success it
// generates a Go source file declaring a test double for the requested
// interface, in the package the go:generate directive ran in.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	info, err := getGeneratorCallInfo(args, getEnv)
	if err != nil {
		return err
	}

	pkgImportPath, err := getInterfacePackagePath(info.interfaceName, pkgLoader)
	if err != nil {
		return err
	}

	astFiles, _, err := pkgLoader.Load(pkgImportPath)
	if err != nil {
		return fmt.Errorf("failed to load package %q: %w", pkgImportPath, err)
	}

	iface, err := findInterface(astFiles, info.localInterfaceName, pkgImportPath)
	if err != nil {
		return err
	}

	code, err := generateDoubleCode(iface, info, astFiles, pkgImportPath)
	if err != nil {
		return err
	}

	return writeGeneratedCode(code, info.doubleName, info.pkgName, getEnv, fileSys, out)
}

// Functions - Private

// getGeneratorCallInfo returns basic information about the current call to
// the generator.
func getGeneratorCallInfo(args []string, getEnv func(string) string) (generatorInfo, error) {
	pkgName := getEnv(goPackageEnvVar)

	parsed, err := parseArgs(args)
	if err != nil {
		return generatorInfo{}, err
	}

	interfaceName := parsed.Interface
	localInterfaceName := localName(interfaceName)
	doubleName := parsed.Name

	if doubleName == "" {
		doubleName = localInterfaceName + "Double"
	}

	return generatorInfo{
		pkgName:            pkgName,
		interfaceName:      interfaceName,
		localInterfaceName: localInterfaceName,
		doubleName:         doubleName,
	}, nil
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// unexported constants.
const (
	goFileEnvVar    = "GOFILE"
	goPackageEnvVar = "GOPACKAGE"
)

package run

import (
	"fmt"
	"io"
	"strings"

	"github.com/toejough/go-reorder"
)

// writeGeneratedCode writes the generated code to generated_<doubleName>.go,
// reordering declarations to project conventions first.
func writeGeneratedCode(
	code string, doubleName string, pkgName string, getEnv func(string) string, fileSys FileSystem, out io.Writer,
) error {
	filename := getOutputFilename(doubleName, pkgName, getEnv)

	reordered, err := reorder.Source(code)
	if err != nil {
		// If reordering fails, log but continue with the formatted original
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)

		reordered = code
	}

	err = fileSys.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}

// getOutputFilename names the generated file. Doubles generated from a test
// package or a test file get a _test.go suffix so they stay out of the
// production build; everything else lands in a plain .go file.
func getOutputFilename(doubleName, pkgName string, getEnv func(string) string) string {
	filename := "generated_" + doubleName

	goFile := getEnv(goFileEnvVar)

	isTestFile := strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	if isTestFile && !strings.HasSuffix(doubleName, "_test") {
		return "generated_" + strings.TrimSuffix(doubleName, ".go") + "_test.go"
	}

	if !strings.HasSuffix(filename, ".go") {
		filename += ".go"
	}

	return filename
}

// generatedFilePermissions keeps generated files owner-writable only.
const generatedFilePermissions = 0o600

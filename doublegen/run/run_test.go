//nolint:testpackage // Tests internal functions
package run

import (
	"errors"
	"io"
	"testing"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		args          []string
		wantErr       bool
		wantInterface string
		wantName      string
	}{
		{
			name:          "positional interface only",
			args:          []string{"doublegen", "Store"},
			wantInterface: "Store",
		},
		{
			name:          "qualified interface with name flag",
			args:          []string{"doublegen", "pkg.Meter", "--name", "MeterFake"},
			wantInterface: "pkg.Meter",
			wantName:      "MeterFake",
		},
		{
			name:    "missing interface",
			args:    []string{"doublegen"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"doublegen", "Store", "--bogus"},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := parseArgs(testCase.args)
			if testCase.wantErr {
				if err == nil {
					t.Error("parseArgs() expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("parseArgs() unexpected error: %v", err)
			}

			if parsed.Interface != testCase.wantInterface {
				t.Errorf("parseArgs() Interface = %q, want %q", parsed.Interface, testCase.wantInterface)
			}

			if parsed.Name != testCase.wantName {
				t.Errorf("parseArgs() Name = %q, want %q", parsed.Name, testCase.wantName)
			}
		})
	}
}

func TestGetGeneratorCallInfo_DefaultsDoubleName(t *testing.T) {
	t.Parallel()

	getEnv := func(key string) string {
		if key == goPackageEnvVar {
			return "gen"
		}

		return ""
	}

	info, err := getGeneratorCallInfo([]string{"doublegen", "pkg.Store"}, getEnv)
	if err != nil {
		t.Fatalf("getGeneratorCallInfo() unexpected error: %v", err)
	}

	if info.pkgName != "gen" {
		t.Errorf("pkgName = %q, want %q", info.pkgName, "gen")
	}

	if info.interfaceName != "pkg.Store" {
		t.Errorf("interfaceName = %q, want %q", info.interfaceName, "pkg.Store")
	}

	if info.localInterfaceName != "Store" {
		t.Errorf("localInterfaceName = %q, want %q", info.localInterfaceName, "Store")
	}

	if info.doubleName != "StoreDouble" {
		t.Errorf("doubleName = %q, want %q", info.doubleName, "StoreDouble")
	}
}

func TestGetOutputFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doubleName string
		pkgName    string
		goFile     string
		want       string
	}{
		{
			name:       "test package adds _test suffix",
			doubleName: "StoreDouble",
			pkgName:    "gen_test",
			goFile:     "gen.go",
			want:       "generated_StoreDouble_test.go",
		},
		{
			name:       "test file adds _test suffix",
			doubleName: "StoreDouble",
			pkgName:    "gen",
			goFile:     "gen_test.go",
			want:       "generated_StoreDouble_test.go",
		},
		{
			name:       "non-test adds .go suffix",
			doubleName: "StoreDouble",
			pkgName:    "gen",
			goFile:     "gen.go",
			want:       "generated_StoreDouble.go",
		},
		{
			name:       "doubleName already has .go suffix",
			doubleName: "Custom.go",
			pkgName:    "gen",
			goFile:     "gen.go",
			want:       "generated_Custom.go",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			getEnv := func(key string) string {
				if key == goFileEnvVar {
					return testCase.goFile
				}

				return ""
			}

			got := getOutputFilename(testCase.doubleName, testCase.pkgName, getEnv)
			if got != testCase.want {
				t.Errorf("getOutputFilename() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestLocalName(t *testing.T) {
	t.Parallel()

	if got := localName("pkg.Store"); got != "Store" {
		t.Errorf("localName(pkg.Store) = %q, want Store", got)
	}

	if got := localName("Store"); got != "Store" {
		t.Errorf("localName(Store) = %q, want Store", got)
	}

	if !isLocalInterface("Store") {
		t.Error("isLocalInterface(Store) = false, want true")
	}

	if isLocalInterface("pkg.Store") {
		t.Error("isLocalInterface(pkg.Store) = true, want false")
	}
}

func TestFallbackParamName_AvoidsDeclaredNames(t *testing.T) {
	t.Parallel()

	used := map[string]bool{"a2": true}

	if got := fallbackParamName(1, used); got != "a1" {
		t.Errorf("fallbackParamName(1) = %q, want a1", got)
	}

	// Position 2 collides with a declared "a2" and must step aside.
	if got := fallbackParamName(2, used); got != "aa2" {
		t.Errorf("fallbackParamName(2) = %q, want aa2", got)
	}
}

func TestGetInterfacePackagePath_Local(t *testing.T) {
	t.Parallel()

	// Local names never touch the loader.
	path, err := getInterfacePackagePath("Store", nil)
	if err != nil {
		t.Fatalf("getInterfacePackagePath() unexpected error: %v", err)
	}

	if path != "." {
		t.Errorf("getInterfacePackagePath(Store) = %q, want \".\"", path)
	}
}

func TestRun_PropagatesLoadErrors(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("load failed")
	loader := &stubLoader{err: wantErr}

	err := Run([]string{"doublegen", "Store"}, func(string) string { return "gen" }, nil, loader, io.Discard)
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
}

package e2e

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gotest.tools/v3/icmd"
)

var inspect2compose = ""

// getBinary returns the absolute path of the binary under test, skipping the
// test when it was not built.
func getBinary(t *testing.T) string {
	t.Helper()
	if inspect2compose != "" {
		return inspect2compose
	}
	binName := findBinary("docker-inspect2compose", os.Getenv("INSPECT2COMPOSE_BINARY"))
	if binName == "" {
		t.Skip("cannot locate docker-inspect2compose binary, set INSPECT2COMPOSE_BINARY")
	}
	binName, err := filepath.Abs(binName)
	if err != nil {
		t.Fatalf("failed to convert %s path to absolute: %s", binName, err)
	}
	inspect2compose = binName
	return inspect2compose
}

// requireEngine skips the test when no engine answers.
func requireEngine(t *testing.T) {
	t.Helper()
	if res := icmd.RunCommand("docker", "version"); res.Error != nil {
		t.Skipf("no container engine available: %s", res.Combined())
	}
}

func findBinary(app string, options ...string) string {
	var binNames []string
	for _, option := range options {
		if option != "" {
			binNames = append(binNames, option)
		}
	}
	binNames = append(binNames,
		fmt.Sprintf("./%s-%s%s", app, runtime.GOOS, binExt()),
		fmt.Sprintf("./%s%s", app, binExt()),
		fmt.Sprintf("../bin/%s-%s%s", app, runtime.GOOS, binExt()),
		fmt.Sprintf("../bin/%s%s", app, binExt()),
	)
	for _, binName := range binNames {
		if s, err := os.Stat(binName); err == nil && !s.IsDir() {
			return binName
		}
	}
	return ""
}

func binExt() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

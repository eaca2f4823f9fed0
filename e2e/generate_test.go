package e2e

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/fs"
	"gotest.tools/v3/icmd"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, os.Getpid())
}

func TestGenerateFromRunningContainer(t *testing.T) {
	bin := getBinary(t)
	requireEngine(t)

	name := uniqueName("i2c-web")
	startContainer(t, name, "nginx:alpine",
		"-p", "18080:80",
		"-p", "19090:90/udp",
		"-e", "DEBUG=1",
		"--restart", "on-failure:3",
		"--memory", "512m",
	)

	res := icmd.RunCommand(bin, name)
	res.Assert(t, icmd.Success)
	out := res.Stdout()
	assert.Check(t, is.Contains(out, "  "+name+":\n    image: nginx:alpine\n"))
	assert.Check(t, is.Contains(out, "    - 18080:80\n    - 19090:90/udp\n"))
	assert.Check(t, is.Contains(out, "      DEBUG: \"1\"\n"))
	assert.Check(t, !strings.Contains(out, "PATH"))
	assert.Check(t, is.Contains(out, "        condition: on-failure\n        max_attempts: 3\n"))
	assert.Check(t, is.Contains(out, "          memory: 512MiB\n"))
	assert.Check(t, !strings.Contains(out, "cpus"))
	assert.Check(t, is.Contains(res.Stderr(), "wrote 1 service definition(s) to standard output"))

	// same container, same output
	again := icmd.RunCommand(bin, name)
	again.Assert(t, icmd.Success)
	assert.Check(t, is.Equal(again.Stdout(), out))
}

func TestGenerateIncludePathEnv(t *testing.T) {
	bin := getBinary(t)
	requireEngine(t)

	name := uniqueName("i2c-path")
	startContainer(t, name, "nginx:alpine")

	icmd.RunCommand(bin, "--include-path-env", name).Assert(t, icmd.Expected{
		ExitCode: 0,
		Out:      "      PATH: ",
	})
}

func TestPublishAllPorts(t *testing.T) {
	bin := getBinary(t)
	requireEngine(t)

	name := uniqueName("i2c-publish-all")
	startContainer(t, name, "nginx:alpine", "-P")

	res := icmd.RunCommand(bin, name)
	res.Assert(t, icmd.Success)
	assert.Check(t, is.Contains(res.Stdout(), "    ports:\n    - \"80\"\n"))
}

func TestAddToExistingFile(t *testing.T) {
	bin := getBinary(t)
	requireEngine(t)

	name := uniqueName("i2c-merge")
	startContainer(t, name, "nginx:alpine", "-p", "18081:80")

	dir := fs.NewDir(t, "add-to", fs.WithFile("docker-compose.yml", fmt.Sprintf(`version: "3.8"
services:
  %s:
    image: httpd
  db:
    image: postgres:16
`, name)))
	defer dir.Remove()

	icmd.RunCommand(bin,
		"--add-to", dir.Join("docker-compose.yml"),
		"-o", dir.Join("merged.yml"),
		name,
	).Assert(t, icmd.Success)

	merged, err := os.ReadFile(dir.Join("merged.yml"))
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(merged), "    image: nginx:alpine\n"))
	assert.Check(t, is.Contains(string(merged), "  db:\n    image: postgres:16\n"))
	assert.Check(t, !strings.Contains(string(merged), "httpd"))
}

func TestUnknownContainer(t *testing.T) {
	bin := getBinary(t)
	requireEngine(t)

	dir := fs.NewDir(t, "unknown")
	defer dir.Remove()

	icmd.RunCommand(bin, "-o", dir.Join("docker-compose.yml"), "doesnotexist").Assert(t, icmd.Expected{
		ExitCode: 1,
		Err:      "no such container: doesnotexist",
	})
	assert.Assert(t, fs.Equal(dir.Path(), fs.Expected(t)))
}

func TestUnreachableEngine(t *testing.T) {
	bin := getBinary(t)

	icmd.RunCmd(icmd.Command(bin, "web"), icmd.WithEnv("DOCKER_HOST=tcp://127.0.0.1:1")).Assert(t, icmd.Expected{
		ExitCode: 1,
		Err:      "cannot connect to the container runtime",
	})
}

func TestVersion(t *testing.T) {
	bin := getBinary(t)

	icmd.RunCommand(bin, "--version").Assert(t, icmd.Expected{
		ExitCode: 0,
		Out:      "docker-inspect2compose",
	})
}

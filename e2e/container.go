package e2e

import (
	"strings"
	"testing"

	"gotest.tools/v3/icmd"
)

type container struct {
	name string
	id   string
}

// startContainer runs a detached container with the extra docker run flags
// and removes it when the test ends.
func startContainer(t *testing.T, name, image string, flags ...string) *container {
	t.Helper()
	args := append([]string{"run", "-d", "--name", name}, flags...)
	args = append(args, image)
	res := icmd.RunCommand("docker", args...)
	res.Assert(t, icmd.Success)
	c := &container{name: name, id: strings.TrimSpace(res.Stdout())}
	t.Cleanup(func() {
		icmd.RunCommand("docker", "rm", "-f", "-v", c.id)
	})
	return c
}

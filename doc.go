// Package inspect2compose recovers Compose service definitions from running
// containers.
//
// The `cmd/docker-inspect2compose` package generates the
// `docker-inspect2compose` binary. It inspects containers through the Docker
// Engine API, maps their runtime configuration to Compose services and writes
// them to a new Compose file, or adds them to an existing one.
package inspect2compose

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/docker/inspect2compose/internal"
	"github.com/docker/inspect2compose/internal/compose"
	"github.com/docker/inspect2compose/internal/convert"
	"github.com/docker/inspect2compose/internal/formatter"
	_ "github.com/docker/inspect2compose/internal/formatter/json" // registers the json formatter
	_ "github.com/docker/inspect2compose/internal/formatter/yaml" // registers the yaml formatter
	"github.com/docker/inspect2compose/internal/inspect"
	"github.com/docker/inspect2compose/internal/slices"
	"github.com/docker/inspect2compose/specification"
	"github.com/docker/inspect2compose/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// deploy sections appeared with this Compose file format
const minComposeVersion = "3.0"

// ClientFactory connects to the engine listening on host, or to the one the
// environment points to when host is empty.
type ClientFactory func(host string) (inspect.APIClient, error)

type rootOptions struct {
	output         string
	includePathEnv bool
	addTo          string
	composeVersion string
	format         string
	all            bool
	idsFile        string
	host           string
	debug          bool
	showVersion    bool
}

func (o *rootOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.output, "output", "o", internal.StdoutTarget, "Output file, '-' for stdout")
	flags.BoolVar(&o.includePathEnv, "include-path-env", false, "Include the PATH environment variable")
	flags.StringVar(&o.addTo, "add-to", "", "Existing Compose file to add the service(s) to")
	flags.StringVar(&o.composeVersion, "compose-version", "", "Top-level 'version' for new documents (3.0 or later)")
	flags.StringVar(&o.format, "format", "yaml", "Output format (yaml, json)")
	flags.BoolVarP(&o.all, "all", "a", false, "With no CONTAINER, include stopped containers")
	flags.StringVar(&o.idsFile, "ids-file", "", "Read container identifiers from a file, one per line, '-' for stdin")
	flags.StringVarP(&o.host, "host", "H", "", "Daemon socket to connect to (default $DOCKER_HOST)")
	flags.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&o.showVersion, "version", false, "Print version information")
}

// NewRootCmd returns the command inspecting containers and writing the
// equivalent Compose services. YAML written to standard output goes to
// stdout, logs go to the command error stream.
func NewRootCmd(use string, newClient ClientFactory, stdout io.Writer) *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   use + " [OPTIONS] [CONTAINER...]",
		Short: "Generate Compose services from running containers",
		Long: `Inspect containers and write the equivalent Compose service definitions.
Without CONTAINER, all running containers are inspected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			log.SetLevel(log.InfoLevel)
			if opts.debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintln(stdout, internal.FullVersion()) //nolint:errcheck
				return nil
			}
			ids, err := containerIDs(cmd, args, opts.idsFile)
			if err != nil {
				return err
			}
			return runGenerate(cmd, newClient, stdout, ids, opts)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func runGenerate(cmd *cobra.Command, newClient ClientFactory, stdout io.Writer, ids []string, opts rootOptions) error {
	if !slices.ContainsString(formatter.Drivers(), opts.format) {
		return errors.Errorf("unknown format %q, expected one of %s", opts.format, strings.Join(formatter.Drivers(), ", "))
	}
	// the merge target is checked before anything is inspected
	doc, err := document(opts)
	if err != nil {
		return err
	}

	client, err := newClient(opts.host)
	if err != nil {
		return errors.Wrap(err, "failed to create the engine client")
	}
	defer client.Close() //nolint:errcheck

	inspector := inspect.NewInspector(client, inspect.WithAll(opts.all))
	snapshots, err := inspector.Inspect(cmd.Context(), ids)
	if err != nil {
		return err
	}

	converter := convert.Converter{IncludePathEnv: opts.includePathEnv}
	for _, snapshot := range snapshots {
		def := converter.Convert(snapshot)
		log.WithField("container", def.Name).Debug("converted container")
		doc.Add(def)
	}

	data, err := formatter.Format(doc, opts.format)
	if err != nil {
		return err
	}
	if err := compose.Write(opts.output, stdout, data); err != nil {
		return err
	}
	log.Infof("wrote %d service definition(s) to %s", len(snapshots), outputName(opts.output))
	return nil
}

func document(opts rootOptions) (*compose.Document, error) {
	if opts.addTo == "" {
		if opts.composeVersion != "" {
			if err := checkComposeVersion(opts.composeVersion); err != nil {
				return nil, errors.Wrap(err, "invalid --compose-version")
			}
		}
		return compose.NewDocument(opts.composeVersion), nil
	}
	if opts.composeVersion != "" {
		log.Warnf("--compose-version is ignored, the version of %s is kept", opts.addTo)
	}
	return compose.LoadDocument(opts.addTo)
}

// checkComposeVersion accepts the formats a schema exists for, starting with
// the first one supporting deploy sections.
func checkComposeVersion(version string) error {
	if err := utils.CheckVersionGte(version, minComposeVersion); err != nil {
		return err
	}
	return specification.ValidateVersion(version)
}

func containerIDs(cmd *cobra.Command, args []string, idsFile string) ([]string, error) {
	if idsFile == "" {
		return args, nil
	}
	var r io.Reader
	if idsFile == internal.StdinSource {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(idsFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read container identifiers")
		}
		defer f.Close() //nolint:errcheck
		r = f
	}
	ids, err := utils.ReadNewlineSeparatedList(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read container identifiers from %s", idsFile)
	}
	if len(args)+len(ids) == 0 {
		return nil, errors.Errorf("no container identifiers in %s", idsFile)
	}
	return append(args, ids...), nil
}

func outputName(target string) string {
	if target == "" || target == internal.StdoutTarget {
		return "standard output"
	}
	return target
}

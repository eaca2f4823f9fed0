// Package inspect queries the container engine for the configuration of
// containers.
package inspect

import (
	"context"
	"sort"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/inspect2compose/internal"
	"github.com/docker/inspect2compose/internal/errdefs"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Inspector fetches container snapshots from the engine.
type Inspector struct {
	client APIClient
	all    bool
	logger log.FieldLogger
}

// Option customizes an Inspector
type Option func(*Inspector)

// WithAll makes an Inspector called without identifiers consider stopped
// containers too.
func WithAll(all bool) Option {
	return func(i *Inspector) {
		i.all = all
	}
}

// WithLogger sets the logger warnings are reported to.
func WithLogger(logger log.FieldLogger) Option {
	return func(i *Inspector) {
		i.logger = logger
	}
}

// NewInspector returns an Inspector using the given engine client.
func NewInspector(c APIClient, opts ...Option) *Inspector {
	i := &Inspector{
		client: c,
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inspect returns one snapshot per identifier, in the given order. Without
// identifiers, it returns the snapshots of all running containers ordered by
// name.
func (i *Inspector) Inspect(ctx context.Context, ids []string) ([]Snapshot, error) {
	if _, err := i.client.Ping(ctx); err != nil {
		return nil, &errdefs.RuntimeUnavailableError{Err: err}
	}
	defaultDriver := i.defaultLoggingDriver(ctx)

	if len(ids) == 0 {
		var err error
		if ids, err = i.containerIDs(ctx); err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			i.logger.Warn("no running containers found")
		}
	}

	images := map[string]*ImageConfig{}
	snapshots := make([]Snapshot, 0, len(ids))
	for _, id := range ids {
		resp, err := i.client.ContainerInspect(ctx, id)
		if err != nil {
			return nil, inspectError(id, err)
		}
		snapshot := newSnapshot(resp)
		snapshot.DefaultLoggingDriver = defaultDriver
		snapshot.ImageConfig = i.imageConfig(ctx, images, snapshot)
		if !snapshot.Created.IsZero() {
			i.logger.WithField("container", snapshot.Name).
				Debugf("inspected container created %s", humanize.Time(snapshot.Created))
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func (i *Inspector) defaultLoggingDriver(ctx context.Context) string {
	info, err := i.client.Info(ctx)
	if err != nil || info.LoggingDriver == "" {
		i.logger.WithError(err).Warnf("cannot determine the engine logging driver, assuming %q", internal.DefaultLoggingDriver)
		return internal.DefaultLoggingDriver
	}
	return info.LoggingDriver
}

func (i *Inspector) containerIDs(ctx context.Context) ([]string, error) {
	containers, err := i.client.ContainerList(ctx, container.ListOptions{All: i.all})
	if err != nil {
		if client.IsErrConnectionFailed(err) {
			return nil, &errdefs.RuntimeUnavailableError{Err: err}
		}
		return nil, errors.Wrap(err, "failed to list containers")
	}
	sort.SliceStable(containers, func(a, b int) bool {
		return firstName(containers[a]) < firstName(containers[b])
	})
	ids := make([]string, len(containers))
	for n, c := range containers {
		ids[n] = c.ID
	}
	return ids, nil
}

func (i *Inspector) imageConfig(ctx context.Context, cache map[string]*ImageConfig, s Snapshot) *ImageConfig {
	ref := s.ImageID
	if ref == "" {
		ref = s.Image
	}
	if cfg, ok := cache[ref]; ok {
		return cfg
	}
	img, err := i.client.ImageInspect(ctx, ref)
	if err != nil {
		i.logger.WithError(err).WithField("container", internal.ServiceNameFromContainer(s.Name)).
			Warnf("cannot inspect image %s, image defaults will not be filtered out", s.Image)
		cache[ref] = nil
		return nil
	}
	cfg := newImageConfig(img)
	cache[ref] = cfg
	return cfg
}

func inspectError(id string, err error) error {
	switch {
	case cerrdefs.IsNotFound(err):
		return &errdefs.NotFoundError{ID: id}
	case client.IsErrConnectionFailed(err):
		return &errdefs.RuntimeUnavailableError{Err: err}
	default:
		return errors.Wrapf(err, "failed to inspect container %q", id)
	}
}

func firstName(c container.Summary) string {
	if len(c.Names) == 0 {
		return c.ID
	}
	return strings.TrimPrefix(c.Names[0], "/")
}

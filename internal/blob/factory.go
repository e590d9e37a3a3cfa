package blob

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"annotkit/internal/blob/fs"
	"annotkit/internal/blob/memory"
	"annotkit/internal/blob/s3"
)

// Open selects a Store for dest:
//
//	s3://bucket[/prefix]   S3 or MinIO (settings in s3.FromEnv)
//	memory://              process memory, discarded on exit
//	file:///dir or /dir    local directory tree, created if needed
func Open(ctx context.Context, dest string) (Store, error) {
	if strings.TrimSpace(dest) == "" {
		return nil, errors.New("empty destination")
	}
	scheme, rest, ok := strings.Cut(dest, "://")
	if !ok {
		return fs.New(dest)
	}
	switch Driver(strings.ToLower(scheme)) {
	case DriverS3:
		u, err := url.Parse(dest)
		if err != nil {
			return nil, errors.Wrapf(err, "parse destination %s", dest)
		}
		if u.Host == "" {
			return nil, errors.Errorf("destination %s: missing bucket", dest)
		}
		return s3.FromEnv(ctx, u.Host, strings.Trim(u.Path, "/"))
	case DriverMemory:
		return memory.New(), nil
	}
	if strings.EqualFold(scheme, "file") {
		return fs.New(rest)
	}
	return nil, errors.Wrapf(ErrUnsupported, "destination scheme %q", scheme)
}

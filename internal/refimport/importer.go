package refimport

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/pkg/errors"

	"annotkit/internal/blob"
	"annotkit/internal/fasta"
	"annotkit/internal/manifest"
)

// DestinationKey is the store key a record is copied to:
// <genus>/<species_strain>/improved/<genus>_<species_strain>.fasta
func DestinationKey(genus, speciesStrain string) string {
	return path.Join(genus, speciesStrain, "improved", genus+"_"+speciesStrain+".fasta")
}

// Importer processes manifest entries one at a time.
type Importer struct {
	// Store receives copies. Nil means validation only.
	Store blob.Store
	// VerifyFASTA additionally requires a '>' header as the first
	// non-blank line of each record's file.
	VerifyFASTA bool
}

// Run classifies every line of the manifest read from r and processes it.
// Per-entry problems are results, not errors; the error is non-nil only
// for read failures, copy failures, cancellation, or emit failing.
func (im *Importer) Run(ctx context.Context, name string, r io.Reader, emit func(Result) error) (Summary, error) {
	var sum Summary
	err := manifest.Scan(r, func(e manifest.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return im.Process(ctx, name, e, func(res Result) error {
			sum.Add(res.Outcome)
			return emit(res)
		})
	})
	if err != nil {
		return sum, errors.Wrapf(err, "manifest %s", name)
	}
	return sum, nil
}

// Process handles one entry. Comments and blank lines produce nothing.
func (im *Importer) Process(ctx context.Context, name string, e manifest.Entry, emit func(Result) error) error {
	res := Result{Manifest: name, Entry: e}
	switch e.Kind {
	case manifest.Comment, manifest.Blank:
		return nil
	case manifest.Malformed:
		res.Outcome = Malformed
		return emit(res)
	case manifest.BarePath:
		res.Outcome, res.Detail = exists(e.Path)
		return emit(res)
	case manifest.Record:
		return im.record(ctx, res, emit)
	}
	return errors.Errorf("line %d: unknown entry kind %v", e.Line, e.Kind)
}

func exists(p string) (Outcome, string) {
	_, err := os.Stat(p)
	switch {
	case err == nil:
		return Found, ""
	case errors.Is(err, fs.ErrNotExist):
		return NotFound, ""
	default:
		return NotFound, err.Error()
	}
}

func (im *Importer) record(ctx context.Context, res Result, emit func(Result) error) error {
	src := res.Entry.Path
	fi, err := os.Stat(src)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		res.Outcome = NotFound
		return emit(res)
	case err != nil:
		res.Outcome, res.Detail = NotFound, err.Error()
		return emit(res)
	case !fi.Mode().IsRegular():
		res.Outcome = NotAFile
		return emit(res)
	}

	if im.VerifyFASTA {
		if _, err := fasta.Inspect(ctx, src); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			res.Outcome, res.Detail = Invalid, err.Error()
			return emit(res)
		}
	}

	res.Outcome = Found
	if err := emit(res); err != nil {
		return err
	}
	if im.Store == nil {
		return nil
	}

	copied, err := im.copy(ctx, res, fi.Size())
	if err != nil {
		return err
	}
	return emit(copied)
}

func (im *Importer) copy(ctx context.Context, res Result, size int64) (Result, error) {
	e := res.Entry
	f, err := os.Open(e.Path)
	if err != nil {
		return res, errors.Wrapf(err, "open %s", e.Path)
	}
	defer f.Close()

	key := DestinationKey(e.Genus, e.SpeciesStrain)
	info, err := im.Store.Put(ctx, key, f, blob.PutOptions{
		ContentType: "text/x-fasta",
		Size:        size,
		Metadata: map[string]string{
			"common-name": e.CommonName,
			"source":      e.Path,
		},
	})
	if err != nil {
		return res, errors.Wrapf(err, "copy %s", e.Path)
	}

	sum := info.SHA256
	if sum == "" {
		if sum, err = hashFrom(f); err != nil {
			return res, errors.Wrapf(err, "hash %s", e.Path)
		}
	}

	res.Outcome = Copied
	res.Key = key
	res.Destination = im.Store.Location(key)
	res.Bytes = info.Size
	res.SHA256 = sum
	return res, nil
}

// hashFrom rewinds f and returns the hex sha256 of its contents.
func hashFrom(f io.ReadSeeker) (string, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package numsum

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dustin/go-humanize"

	"github.com/suparena/primer/errors"
)

const s3Scheme = "s3://"

// ObjectGetter is the part of the S3 API needed to read s3:// sources.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Summer sums numeric sources.
type Summer struct {
	objects ObjectGetter
}

// Option configures a Summer.
type Option func(*Summer)

// WithObjectGetter enables s3:// sources.
func WithObjectGetter(g ObjectGetter) Option {
	return func(s *Summer) { s.objects = g }
}

// New creates a Summer.
func New(opts ...Option) *Summer {
	s := &Summer{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sum returns the total of every line of source.
// The first line that is not a number aborts the sum. Lines have no length
// limit; values beyond the float64 range count as infinities.
func (s *Summer) Sum(ctx context.Context, source string) (float64, error) {
	rc, err := s.open(ctx, source)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	var (
		total float64
		line  int
	)
	r := bufio.NewReader(rc)
	for {
		raw, readErr := r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return 0, fmt.Errorf("failed to read %s after line %d: %w", source, line, readErr)
		}
		if readErr == io.EOF && raw == "" {
			break
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line++

		v, err := parseLine(raw)
		if err != nil {
			return 0, errors.NewInvalidNumberError(source, line, strings.TrimSpace(raw), err)
		}
		total += v

		if readErr == io.EOF {
			break
		}
	}

	log.WithFields(log.Fields{
		"source": source,
		"lines":  line,
		"total":  humanize.Ftoa(total),
	}).Debug("sum complete")

	return total, nil
}

// Evaluate is Sum with the outcome folded into a Result.
func (s *Summer) Evaluate(ctx context.Context, source string) Result {
	total, err := s.Sum(ctx, source)
	if err != nil {
		return Result{Failure: FailureOf(err), Err: err}
	}
	return Result{Total: total}
}

func (s *Summer) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, s3Scheme) {
		return s.openObject(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, errors.NewFileError(source, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.NewFileError(source, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, errors.NewFileError(source, fmt.Errorf("is a directory"))
	}

	log.WithFields(log.Fields{
		"source": source,
		"size":   humanize.Bytes(uint64(info.Size())),
	}).Debug("opened file")
	return f, nil
}

func (s *Summer) openObject(ctx context.Context, source string) (io.ReadCloser, error) {
	bucket, key, ok := parseObjectURL(source)
	if !ok {
		return nil, errors.NewFileError(source, fmt.Errorf("expected %sbucket/key", s3Scheme))
	}
	if s.objects == nil {
		return nil, errors.NewFileError(source, fmt.Errorf("no S3 client configured"))
	}

	out, err := s.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		logObjectError(source, err)
		return nil, errors.NewFileError(source, err)
	}
	return out.Body, nil
}

// parseLine parses one trimmed line. Out of range values keep the ±Inf
// that ParseFloat returns with them.
func parseLine(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

func parseObjectURL(source string) (bucket, key string, ok bool) {
	bucket, key, ok = strings.Cut(strings.TrimPrefix(source, s3Scheme), "/")
	return bucket, key, ok && bucket != "" && key != ""
}

func logObjectError(source string, err error) {
	entry := log.WithField("source", source)

	var (
		noKey    *s3types.NoSuchKey
		noBucket *s3types.NoSuchBucket
		apiErr   smithy.APIError
	)
	switch {
	case stderrors.As(err, &noKey):
		entry.Debug("object does not exist")
	case stderrors.As(err, &noBucket):
		entry.Debug("bucket does not exist")
	case stderrors.As(err, &apiErr):
		entry.WithField("code", apiErr.ErrorCode()).Debug("object not readable")
	default:
		entry.WithError(err).Debug("object not readable")
	}
}

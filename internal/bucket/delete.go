package bucket

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// toRemoveCh converts a string slice to a <-chan minio.ObjectInfo
func toRemoveCh(keys []string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	go func() {
		for _, key := range keys {
			ch <- minio.ObjectInfo{Key: key}
		}
		close(ch)
	}()
	return ch
}

// PruneReports deletes archived exports last modified before the given time.
func (b *Bucket) PruneReports(ctx context.Context, before time.Time) (int, error) {
	reports, err := b.ListReports(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't list reports: %w", err)
	}

	keys := []string{}
	for _, r := range reports {
		if r.LastModified.Before(before) {
			keys = append(keys, r.Key)
		}
	}
	if len(keys) == 0 {
		return 0, nil
	}

	if err := b.deleteFromBucket(ctx, keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (b *Bucket) deleteFromBucket(ctx context.Context, objectKeys []string) error {
	var deleteErrors []error

	errorCh := b.client.RemoveObjects(ctx, b.S3BucketName, toRemoveCh(objectKeys), minio.RemoveObjectsOptions{})

	for dErr := range errorCh {
		slog.Default().ErrorContext(ctx, "failed to delete object from s3 bucket",
			slog.String("object_key", dErr.ObjectName),
			slog.String("err", dErr.Err.Error()),
		)
		deleteErrors = append(deleteErrors, dErr.Err)
	}

	if len(deleteErrors) > 0 {
		var errMsgs []string
		for _, err := range deleteErrors {
			errMsgs = append(errMsgs, err.Error())
		}
		return fmt.Errorf("errors during deletion: %s", strings.Join(errMsgs, "; "))
	}

	return nil
}

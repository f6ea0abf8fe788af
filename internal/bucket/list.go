package bucket

import (
	"context"
	"path"
	"sort"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/minio/minio-go/v7"
)

// ListReports lists archived csv exports, newest first.
func (b *Bucket) ListReports(ctx context.Context) ([]entity.ArchivedReport, error) {
	objectCh := b.client.ListObjects(ctx, b.S3BucketName, minio.ListObjectsOptions{
		Prefix:    b.reportsPrefix(),
		Recursive: true,
	})

	reports := []entity.ArchivedReport{}
	for o := range objectCh {
		if o.Err != nil {
			return nil, o.Err
		}
		if path.Ext(o.Key) != ".csv" {
			continue
		}
		reports = append(reports, entity.ArchivedReport{
			Key:          o.Key,
			URL:          b.getCDNURL(o.Key),
			Size:         o.Size,
			LastModified: o.LastModified,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].LastModified.After(reports[j].LastModified)
	})
	return reports, nil
}

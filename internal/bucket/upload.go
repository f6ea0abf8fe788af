package bucket

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/minio/minio-go/v7"
)

// UploadReport puts the export under base_folder/reports and returns its public URL.
func (b *Bucket) UploadReport(ctx context.Context, export *entity.ReportExport) (string, error) {
	if export == nil || len(export.Content) == 0 {
		return "", fmt.Errorf("empty export")
	}
	fp := b.constructFullPath(reportsFolder, export.Filename)

	r := bytes.NewReader(export.Content)
	_, err := b.client.PutObject(ctx, b.S3BucketName, fp, r, int64(r.Len()), minio.PutObjectOptions{
		ContentType:        export.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", export.Filename),
		CacheControl:       "no-cache",
		UserMetadata:       map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return "", fmt.Errorf("error putting object: %w", err)
	}

	return b.getCDNURL(fp), nil
}

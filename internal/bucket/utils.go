package bucket

import (
	"fmt"
	"path"
	"strings"
)

const reportsFolder = "reports"

func (b *Bucket) reportsPrefix() string {
	return strings.TrimPrefix(path.Join(b.BaseFolder, reportsFolder)+"/", "/")
}

func (b *Bucket) constructFullPath(folder, fileName string) string {
	return strings.TrimPrefix(path.Clean(path.Join(b.BaseFolder, folder, path.Base(fileName))), "/")
}

func (b *Bucket) getCDNURL(filePath string) string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", b.SubdomainEndpoint, filePath)
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}

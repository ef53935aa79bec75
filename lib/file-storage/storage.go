package filestorage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadBackup(ctx context.Context, path string) (objectName string, err error)
	MakeBucket(ctx context.Context) error
}

// Instance stays nil when S3 is not configured.
var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func NewInstance(s3client *minio.Client, bucketName string) {
	if s3client == nil {
		return
	}
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

func (i impl) UploadBackup(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to open backup for upload")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", errors.Wrap(err, "unable to stat backup")
	}
	objectName := "workbook-backups/" + filepath.Base(path)
	_, err = i.s3client.PutObject(ctx, i.bucketName, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		return "", errors.Wrap(err, "unable to upload backup to S3")
	}
	log.WithField("object", objectName).Info("workbook backup uploaded")
	return objectName, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

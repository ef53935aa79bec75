package initializers

import (
	"context"
	"leave-tools-backend/config"
	filestorage "leave-tools-backend/lib/file-storage"
	s3client "leave-tools-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 is not configured, off-site backups are disabled")
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("unable to init S3 client")
		return
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient, config.Conf.S3.BucketName)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("S3 connection failed, bucket check returned an error")
	}
	log.Info("S3 client initialized")
}

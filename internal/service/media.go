package service

import (
	"Orbit/internal/pkg/consts"
	"Orbit/internal/pkg/minio"
	"bytes"
	"context"
	"fmt"
	log "log/slog"
	"mime/multipart"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// maxImageWidth 上传图片统一压到该宽度以内
const maxImageWidth = 1920

// uploadImage 解码并压缩上传的图片，存入对象存储后返回公网地址与对象名
func uploadImage(ctx context.Context, folder string, fh *multipart.FileHeader) (string, string, error) {
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return "", "", ErrFileNotSupported
	}

	file, err := fh.Open()
	if err != nil {
		log.ErrorContext(ctx, "读取上传文件失败", "filename", fh.Filename, "err", err)
		return "", "", ErrUpstreamMedia
	}
	defer func() {
		_ = file.Close()
	}()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", ErrFileNotSupported
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		log.ErrorContext(ctx, "图片编码失败", "filename", fh.Filename, "err", err)
		return "", "", ErrUpstreamMedia
	}

	objectName := fmt.Sprintf("%s/%s.jpg", folder, uuid.New().String())
	if _, err = minio.UploadFile(ctx, objectName, &buf, int64(buf.Len()), "image/jpeg"); err != nil {
		log.ErrorContext(ctx, "图片上传失败", "object", objectName, "err", err)
		return "", "", ErrUpstreamMedia
	}

	return minio.GetPublicURL(objectName), objectName, nil
}

// destroyImage 删除对象存储中的旧图，失败只记日志不阻断主流程
func destroyImage(ctx context.Context, objectName *string) {
	if objectName == nil || *objectName == "" {
		return
	}
	if err := minio.DeleteFile(ctx, *objectName); err != nil {
		log.WarnContext(ctx, "旧图片清理失败", "object", *objectName, "err", err)
	}
}

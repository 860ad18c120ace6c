package courses

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	store "github.com/dpak1999/cognitionis-server/pkg/s3"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

const maxVideoSize = 512 * 1024 * 1024 // 512 MB

type removeVideoRequest struct {
	Video models.MediaObject `json:"video" binding:"required"`
}

// UploadVideo stores a multipart video upload in the video bucket
func UploadVideo(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		utils.FullyResponse(c, 400, "Video required", utils.ErrVideoRequired, nil)
		return
	}

	if file.Size > maxVideoSize {
		utils.FullyResponse(c, 400, "Video too large ( > 512MB)", utils.ErrVideoTooLarge, nil)
		return
	}

	srcFile, err := file.Open()
	if err != nil {
		utils.ServerErrorResponse(c, 400, "Error opening video", utils.ErrBadRequest, err)
		return
	}
	defer srcFile.Close()

	src := bytes.Buffer{}
	if _, err := src.ReadFrom(srcFile); err != nil {
		utils.ServerErrorResponse(c, 500, "Error reading video", utils.ErrBadRequest, err)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".mp4"
	}
	key := fmt.Sprintf("%s%s", utils.Uint64ToStr(encryption.GenerateID()), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}

	location, err := store.UploadObject(c, utils.CourseVideoBucket, key, contentType, src.Bytes())
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error uploading file to S3", utils.ErrS3UploadFailed, err)
		return
	}

	utils.FullyResponse(c, 200, "Video uploaded successfully", nil, models.MediaObject{
		Bucket:   utils.CourseVideoBucket,
		Key:      key,
		Location: location,
	})
}

// RemoveVideo deletes a stored video by bucket and key
func RemoveVideo(c *gin.Context) {
	var request removeVideoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "No video found", utils.ErrVideoRequired, err.Error())
		return
	}

	if err := store.DeleteObject(c, request.Video.Bucket, request.Video.Key); err != nil {
		utils.ServerErrorResponse(c, 500, "Error deleting file from S3", utils.ErrS3DeleteFailed, err)
		return
	}

	utils.FullyResponse(c, 200, "Video removed successfully", nil, gin.H{"ok": true})
}

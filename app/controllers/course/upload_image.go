package courses

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	store "github.com/dpak1999/cognitionis-server/pkg/s3"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"
)

const maxImageSize = 10 * 1024 * 1024 // 10 MB
const thumbnailWidth = 320

type uploadImageRequest struct {
	// Data URI, e.g. data:image/png;base64,....
	Image string `json:"image" binding:"required"`
}

type removeImageRequest struct {
	Image models.MediaObject `json:"image" binding:"required"`
}

// UploadImage decodes a base64 data URI and stores the image plus a resized
// thumbnail in the image bucket
func UploadImage(c *gin.Context) {
	var request uploadImageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "No image found", utils.ErrImageRequired, err.Error())
		return
	}

	imageType, data, err := decodeDataURI(request.Image)
	if err != nil {
		utils.FullyResponse(c, 400, "Uploaded data is not a valid image", utils.ErrInvalidImage, nil)
		return
	}

	if len(data) > maxImageSize {
		utils.FullyResponse(c, 400, "Image too large ( > 10MB)", utils.ErrImageTooLarge, nil)
		return
	}

	key := fmt.Sprintf("%s.%s", utils.Uint64ToStr(encryption.GenerateID()), imageType)
	contentType := "image/" + imageType

	location, err := store.UploadObject(c, utils.CourseImageBucket, key, contentType, data)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error uploading file to S3", utils.ErrS3UploadFailed, err)
		return
	}

	// Store a thumbnail alongside, catalog pages don't need the full image.
	// A decode failure here only skips the thumbnail.
	if thumb, err := makeThumbnail(data); err == nil {
		thumbKey := "thumb/" + key
		if _, err := store.UploadObject(c, utils.CourseImageBucket, thumbKey, "image/jpeg", thumb); err != nil {
			utils.Logger.Sugar().Warnf("Failed to upload thumbnail %s: %v", thumbKey, err)
		}
	}

	utils.FullyResponse(c, 200, "File uploaded successfully", nil, models.MediaObject{
		Bucket:   utils.CourseImageBucket,
		Key:      key,
		Location: location,
	})
}

// RemoveImage deletes a stored image by bucket and key
func RemoveImage(c *gin.Context) {
	var request removeImageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "No image found", utils.ErrImageRequired, err.Error())
		return
	}

	if err := store.DeleteObject(c, request.Image.Bucket, request.Image.Key); err != nil {
		utils.ServerErrorResponse(c, 500, "Error deleting file from S3", utils.ErrS3DeleteFailed, err)
		return
	}

	utils.FullyResponse(c, 200, "File removed successfully", nil, gin.H{"ok": true})
}

// decodeDataURI splits a data:image/...;base64,... URI into its media
// subtype and raw bytes
func decodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:image/") {
		return "", nil, fmt.Errorf("not an image data URI")
	}

	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	header := strings.TrimPrefix(parts[0], "data:image/")
	imageType := strings.SplitN(header, ";", 2)[0]
	if imageType == "" {
		return "", nil, fmt.Errorf("missing image type")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, err
	}

	return imageType, data, nil
}

func makeThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

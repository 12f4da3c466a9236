package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reclaim/api-go/config"
	"github.com/reclaim/api-go/imaging"
	"github.com/reclaim/api-go/services"
	"github.com/reclaim/api-go/utils"
)

// UploadController talks to the blob store (Cloudflare R2 via the S3 API).
// The rest of the system only ever sees the opaque keys it hands out.
type UploadController struct {
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController() *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetPresignedURL godoc
// @Summary Generate a presigned upload URL
// @Description Returns a short-lived PUT URL and the opaque key to reference the image by
// @Tags uploads
// @Accept json
// @Produce json
// @Param upload body PresignedURLRequest true "Upload request"
// @Success 200 {object} StandardResponse
// @Router /uploads/presign [post]
func (uc *UploadController) GetPresignedURL(c *gin.Context) {
	user := utils.GetUser(c)
	var req PresignedURLRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if req.FileSize > imaging.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit", "success": false})
		return
	}

	key := uc.generateImageKey(user.UserID)

	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		respondError(c, &services.DependencyError{Op: "presign upload", Err: err})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		},
		Message: "Presigned URL generated successfully",
	})
}

// UploadImage godoc
// @Summary Upload an image directly
// @Description Accepts a multipart image, normalizes it server-side and stores it in the blob store
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (JPEG or PNG)"
// @Success 201 {object} StandardResponse
// @Router /uploads [post]
func (uc *UploadController) UploadImage(c *gin.Context) {
	user := utils.GetUser(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required", "success": false})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image file", "success": false})
		return
	}
	defer file.Close()

	// Sniffs the real format and re-encodes, so the stored object is always
	// a bounded JPEG no matter what the client named it.
	data, err := imaging.Normalize(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	key := uc.generateImageKey(user.UserID)

	_, err = uc.R2Client.PutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		respondError(c, &services.DependencyError{Op: "store image", Err: err})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data: gin.H{
			"key":     key,
			"fileUrl": fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
		},
		Message: "Image uploaded successfully",
	})
}

// generateImageKey builds a non-guessable storage key. Nothing should ever
// derive a filesystem path or another object's key from it.
func (uc *UploadController) generateImageKey(userID uint) string {
	return fmt.Sprintf("items/%d/%d_%s.jpg", userID, time.Now().Unix(), uuid.New().String())
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

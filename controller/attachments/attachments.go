package attachments

import (
	"fmt"
	"io"
	"zenitmanager/middleware"
	"zenitmanager/services"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
)

var allowedFolders = map[string]bool{
	"tasks":   true,
	"crm":     true,
	"general": true,
}

func AttachmentsController(router *gin.Engine, bucket *storage.BucketHandle) {
	routes := router.Group("/attachments", middleware.AccessTokenMiddleware())
	{
		routes.POST("/upload", func(c *gin.Context) {
			Upload(c, bucket)
		})
	}
}

// Upload stores a multipart file under a sanitized, timestamped key and
// returns its public URL. Attaching the URL to a task or contact is a
// separate update by the caller.
func Upload(c *gin.Context, bucket *storage.BucketHandle) {
	if bucket == nil {
		c.JSON(503, gin.H{"error": "Storage is not configured"})
		return
	}

	folder := c.DefaultQuery("folder", "general")
	if !allowedFolders[folder] {
		c.JSON(400, gin.H{"error": "Invalid folder"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	key := services.ObjectKey(folder, fileHeader.Filename)
	ctx := c.Request.Context()

	obj := bucket.Object(key)
	writer := obj.NewWriter(ctx)
	writer.ContentType = fileHeader.Header.Get("Content-Type")
	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		c.JSON(500, gin.H{"error": "Failed to upload file"})
		return
	}
	if err := writer.Close(); err != nil {
		c.JSON(500, gin.H{"error": "Failed to upload file"})
		return
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		c.JSON(500, gin.H{"error": "Failed to publish file"})
		return
	}

	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to resolve bucket"})
		return
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", attrs.Name, key)
	c.JSON(200, gin.H{
		"message": "File uploaded successfully",
		"key":     key,
		"url":     url,
	})
}

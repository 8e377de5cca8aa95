package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

const maxFoodImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// FoodImageUpload saves the multipart "foodImage" field to tempDir under a
// timestamped name and puts the path in the context as "foodImagePath". A
// request without a file passes through untouched; the handler decides
// whether that is an error.
func FoodImageUpload(tempDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("foodImage")
		if err != nil {
			c.Next()
			return
		}

		if file.Size > maxFoodImageSize {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Image must be 5MB or smaller"})
			return
		}
		if !allowedImageTypes[file.Header.Get("Content-Type")] {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Only .jpeg, .jpg and .png formats are allowed"})
			return
		}

		if err := os.MkdirAll(tempDir, 0o755); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error while storing upload"})
			return
		}
		dst := filepath.Join(tempDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error while storing upload"})
			return
		}

		c.Set("foodImagePath", dst)
		c.Next()
	}
}

package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"gorm.io/gorm"
)

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// GetAllImages lists uploaded gallery images, newest first.
func GetAllImages(ctx *gin.Context) {
	var images []models.ImageUpload
	if err := initializers.DB.Order("created_at desc").Find(&images).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch images", err)
		return
	}

	ctx.JSON(http.StatusOK, images)
}

// UploadImages stores gallery images in S3 and records one row per stored
// object.
func UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Generate a unique filename to prevent overwrites
		uniqueFilename := fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(os.Getenv("S3_BUCKET")),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)

		image := models.ImageUpload{Url: result.Location}
		if err := initializers.DB.Create(&image).Error; err != nil {
			log.Printf("Error saving image to database: %v", err)
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateRecipe(ctx *gin.Context) {
	var recipe models.Recipe
	if err := ctx.ShouldBindJSON(&recipe); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&recipe).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create recipe", err)
		return
	}

	ctx.JSON(http.StatusCreated, recipe)
}

func GetRecipes(ctx *gin.Context) {
	var recipes []models.Recipe
	if err := initializers.DB.Order("created_at desc").Find(&recipes).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch recipes", err)
		return
	}

	ctx.JSON(http.StatusOK, recipes)
}

func GetRecipe(ctx *gin.Context) {
	recipeId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid recipe ID", err)
		return
	}

	var recipe models.Recipe
	if err := initializers.DB.First(&recipe, recipeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Recipe not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve recipe", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func UpdateRecipe(ctx *gin.Context) {
	recipeId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid recipe ID", err)
		return
	}

	var recipe models.Recipe
	if err := initializers.DB.First(&recipe, recipeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Recipe not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve recipe", err)
		}
		return
	}

	if err := ctx.ShouldBindJSON(&recipe); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Save(&recipe).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update recipe", err)
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(ctx *gin.Context) {
	recipeId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid recipe ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Recipe{}, recipeId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete recipe", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Recipe not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

func CreateAboutVideo(ctx *gin.Context) {
	var video models.AboutVideo
	if err := ctx.ShouldBindJSON(&video); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if video.VideoUrl == "" && video.YoutubeID == "" {
		respondWithError(ctx, http.StatusBadRequest, "Either a video URL or a YouTube id is required", nil)
		return
	}

	if err := initializers.DB.Create(&video).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create video", err)
		return
	}

	ctx.JSON(http.StatusCreated, video)
}

func GetAboutVideos(ctx *gin.Context) {
	var videos []models.AboutVideo
	if err := initializers.DB.Order("created_at desc").Find(&videos).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch videos", err)
		return
	}

	ctx.JSON(http.StatusOK, videos)
}

package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"github.com/miracle-naturals/miracle-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgOTPSent               = "OTP sent to email."
	msgOTPVerified           = "OTP verified."
	msgInvalidOTP            = "Invalid OTP"
	msgEmailNotVerified      = "Email not verified with OTP."
	msgUserRegistered        = "User registered successfully"
	msgInvalidRefreshToken   = "invalid or expired refresh token"
	msgLoggedOut             = "logged out"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func checkUserExists(username string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("username = ?", username).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func refreshTokenKey(jti string) string {
	return fmt.Sprintf("refresh:%s", jti)
}

// issueTokenPair creates an access and refresh token for the user and records
// the refresh token in redis so logout can revoke it.
func issueTokenPair(ctx *gin.Context, user models.User) (string, string, error) {
	accessToken, err := utils.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}
	refreshToken, jti, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return "", "", err
	}
	err = initializers.Redis.Set(ctx.Request.Context(),
		refreshTokenKey(jti), user.ID, utils.RefreshTokenLifetime).Err()
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// SendOTP issues a fresh 6 digit code for an email address. Re-sending always
// resets the verified flag so the previous code becomes useless. Email
// transport failure is logged but never reported to the caller.
func SendOTP(ctx *gin.Context) {
	type EmailBody struct {
		Email string `json:"email" binding:"required,email"`
	}

	var body EmailBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		log.Println("OTP generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var record models.EmailOTP
	err = initializers.DB.Where("email = ?", body.Email).First(&record).Error
	if err == nil {
		record.OTP = otp
		record.IsVerified = false
		err = initializers.DB.Save(&record).Error
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.EmailOTP{Email: body.Email, OTP: otp}
		err = initializers.DB.Create(&record).Error
	}
	if err != nil {
		log.Println("OTP upsert error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := utils.SendOTPEmail(body.Email, otp); err != nil {
		log.Println("Error sending OTP email:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgOTPSent})
}

// VerifyOTP flips the verified flag when the submitted code matches the
// latest one issued for the email.
func VerifyOTP(ctx *gin.Context) {
	type OTPVerifyBody struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required,len=6"`
	}

	var body OTPVerifyBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var record models.EmailOTP
	err := initializers.DB.
		Where("email = ? AND otp = ?", body.Email, body.OTP).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidOTP)
		} else {
			log.Println("OTP lookup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	record.IsVerified = true
	if err := initializers.DB.Save(&record).Error; err != nil {
		log.Println("OTP update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgOTPVerified})
}

// Register creates an account for an email that holds a verified OTP record
// and responds with a fresh token pair.
func Register(ctx *gin.Context) {
	var body models.RegisterData
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var record models.EmailOTP
	err := initializers.DB.
		Where("email = ? AND is_verified = ?", body.Email, true).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgEmailNotVerified)
		} else {
			log.Println("OTP lookup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	exists, err := checkUserExists(body.Email)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(body.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Name:     body.Name,
		Username: body.Email,
		Email:    body.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	if err := initializers.DB.Create(&user).Error; err != nil {
		// Unique index on username catches concurrent duplicates.
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	accessToken, refreshToken, err := issueTokenPair(ctx, user)
	if err != nil {
		log.Println("Token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgUserRegistered,
		"access":  accessToken,
		"refresh": refreshToken,
	})
}

// Login authenticates by email and password and responds with a token pair.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	err := initializers.DB.
		Where("email = ? OR username = ?", loginData.Email, loginData.Email).
		First(&user).Error
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	accessToken, refreshToken, err := issueTokenPair(ctx, user)
	if err != nil {
		log.Println("Token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"access":  accessToken,
		"refresh": refreshToken,
	})
}

// RefreshToken exchanges a valid, unrevoked refresh token for a new access
// token.
func RefreshToken(ctx *gin.Context) {
	type RefreshBody struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	var body RefreshBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	claims, err := utils.ParseToken(body.Refresh)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidRefreshToken)
		return
	}
	tokenType, _ := claims["token_type"].(string)
	jti, _ := claims["jti"].(string)
	if tokenType != "refresh" || jti == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidRefreshToken)
		return
	}

	// Revoked tokens are gone from redis even if their signature still checks out.
	if err := initializers.Redis.Get(ctx.Request.Context(), refreshTokenKey(jti)).Err(); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidRefreshToken)
		return
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidRefreshToken)
		return
	}
	var user models.User
	if err := initializers.DB.First(&user, uint(userID)).Error; err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidRefreshToken)
		return
	}

	accessToken, err := utils.GenerateAccessToken(user)
	if err != nil {
		log.Println("Token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"access": accessToken})
}

// Logout revokes a refresh token.
func Logout(ctx *gin.Context) {
	type LogoutBody struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	var body LogoutBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	claims, err := utils.ParseToken(body.Refresh)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidRefreshToken)
		return
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidRefreshToken)
		return
	}

	if err := initializers.Redis.Del(ctx.Request.Context(), refreshTokenKey(jti)).Err(); err != nil {
		log.Println("Refresh token revocation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

// CurrentUser returns the authenticated caller's profile.
func CurrentUser(ctx *gin.Context) {
	userID := ctx.GetUint("userID")

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "user not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"name":     user.Name,
		"email":    user.Email,
		"username": user.Username,
	})
}

// UserCount returns total and active identity counts.
func UserCount(ctx *gin.Context) {
	var totalUsers, activeUsers int64
	if err := initializers.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Println("User count error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := initializers.DB.Model(&models.User{}).
		Where("is_active = ?", true).Count(&activeUsers).Error; err != nil {
		log.Println("User count error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"total_users":  totalUsers,
		"active_users": activeUsers,
	})
}

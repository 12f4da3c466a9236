package controllers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/reclaim/api-go/config"
	"github.com/reclaim/api-go/models"
	"github.com/reclaim/api-go/utils"
)

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

// validateCommunityEmail enforces the closed-community allow-list, e.g.
// only "@cit.edu.in" addresses when ALLOWED_EMAIL_DOMAIN is set.
func validateCommunityEmail(email string) bool {
	domain := config.AllowedEmailDomain()
	if domain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(domain))
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !validateCommunityEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email must belong to the community domain", "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}

	hashedPasswordStr := string(hashedPassword)
	user := models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: &hashedPasswordStr,
		Provider: "email",
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ac.issueTokens(c, &user)
}

// issueTokens signs an access/refresh token pair for user and persists the
// refresh token.
func (ac *AuthController) issueTokens(c *gin.Context, user *models.User) {
	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
	})

	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(), // Refresh token expires in 30 days
	})

	accessToken, err := accessTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	refreshToken, err := refreshTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	ac.DB.Create(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(time.Hour * 24 * 30),
	})

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
		"success":       true,
	})
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var refreshToken models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&refreshToken).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.DB.Delete(&refreshToken)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, refreshToken.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found", "success": false})
		return
	}

	// Rotate: the old refresh token row is updated in place.
	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	newRefreshToken, err := refreshTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate refresh token", "success": false})
		return
	}

	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})

	accessToken, err := accessTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate access token", "success": false})
		return
	}

	refreshToken.Token = newRefreshToken
	refreshToken.ExpirationDate = time.Now().Add(time.Hour * 24 * 30)
	ac.DB.Save(&refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
		"user":          gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
		"success":       true,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var refreshToken models.RefreshToken
	result := ac.DB.Where("token = ?", input.RefreshToken).Delete(&refreshToken)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout", "success": false})
		return
	}

	// Token not found still reads as a successful logout.
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "success": true})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var dbUser models.User
	if err := ac.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":        dbUser.ID,
			"name":      dbUser.Name,
			"email":     dbUser.Email,
			"createdAt": dbUser.CreatedAt,
		},
	})
}

func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if ac.GoogleConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured", "success": false})
		return
	}

	var input struct {
		IDToken     string `json:"id_token"`
		AccessToken string `json:"access_token"`
		Code        string `json:"code"`
		RedirectURI string `json:"redirect_uri"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var userInfo *config.GoogleUserInfo
	var err error

	if input.Code != "" && input.RedirectURI != "" {
		ctx := c.Request.Context()
		token, exchErr := ac.GoogleConfig.ExchangeCode(ctx, input.Code)
		if exchErr != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange code for token", "success": false})
			return
		}
		userInfo, err = ac.GoogleConfig.GetUserInfo(token.AccessToken)
	} else if input.IDToken != "" {
		userInfo, err = ac.GoogleConfig.VerifyIDToken(input.IDToken)
	} else if input.AccessToken != "" {
		userInfo, err = ac.GoogleConfig.GetUserInfo(input.AccessToken)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either code with redirect_uri, id_token, or access_token is required", "success": false})
		return
	}

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	// The community gate applies to Google accounts too.
	if !validateCommunityEmail(userInfo.Email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email must belong to the community domain", "success": false})
		return
	}

	var user models.User
	userExists := ac.DB.Where("google_id = ? OR email = ?", userInfo.ID, strings.ToLower(userInfo.Email)).First(&user).Error == nil

	if userExists {
		if user.GoogleID == nil || *user.GoogleID == "" {
			user.GoogleID = &userInfo.ID
			user.Provider = "google"
			ac.DB.Save(&user)
		}
	} else {
		user = models.User{
			Name:     userInfo.Name,
			Email:    strings.ToLower(userInfo.Email),
			GoogleID: &userInfo.ID,
			Provider: "google",
		}
		if user.Name == "" {
			user.Name = strings.TrimSpace(userInfo.GivenName + " " + userInfo.FamilyName)
		}

		if err := ac.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "success": false})
			return
		}
	}

	ac.issueTokens(c, &user)
}

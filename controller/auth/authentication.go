package auth

import (
	"crypto/sha256"
	"errors"
	"net"
	"os"
	"regexp"
	"strings"
	"time"
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func AuthController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/auth")
	{
		routes.POST("/signin", func(c *gin.Context) {
			Signin(c, db)
		})
		routes.POST("/signup", func(c *gin.Context) {
			Signup(c, db)
		})
		routes.POST("/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			Signout(c, db)
		})
		routes.POST("/newaccesstoken", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
			NewAccessToken(c, db)
		})
	}
}

func CreateAccessToken(userID string, role string) (string, error) {
	hmacSampleSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.AccessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "zenitmanager",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(hmacSampleSecret)
}

func CreateRefreshToken(userID string) (string, error) {
	refreshTokenSecret := []byte(os.Getenv("JWT_REFRESH_SECRET_KEY"))
	claims := &model.RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "zenitmanager",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshTokenSecret)
}

// HashRefreshToken shortens the token with SHA-256 before bcrypt, which
// only accepts inputs up to 72 bytes.
func HashRefreshToken(token string) (string, error) {
	hash := sha256.Sum256([]byte(token))
	hashedToken, err := bcrypt.GenerateFromPassword(hash[:], bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedToken), nil
}

func isValidEmail(email string) error {
	const emailRegex = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	re := regexp.MustCompile(emailRegex)
	if !re.MatchString(email) {
		return errors.New("invalid email format")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return errors.New("invalid email structure")
	}
	domain := parts[1]

	mxRecords, err := net.LookupMX(domain)
	if err != nil || len(mxRecords) == 0 {
		return errors.New("email domain does not have valid MX records")
	}

	return nil
}

func Signin(c *gin.Context, db *gorm.DB) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	var user model.User
	result := db.Where("email = ?", request.Email).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)); err != nil {
		c.JSON(401, gin.H{"error": "Invalid password"})
		return
	}

	accessToken, err := CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}
	refreshToken, err := CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create token"})
		return
	}

	hashedRefreshToken, err := HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash refresh token"})
		return
	}
	if err := db.Model(&user).Update("refresh_hash", hashedRefreshToken).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(200, gin.H{
		"message": "Login Successfully",
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
		"user": user,
	})
}

func Signup(c *gin.Context, db *gorm.DB) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := isValidEmail(request.Email); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	var user model.User
	result := db.Where("email = ?", request.Email).First(&user)
	if result.Error == nil {
		c.JSON(400, gin.H{"error": "Email already exists"})
		return
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}

	userData := model.User{
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: string(hashedPassword),
		Role:           "member",
		Metadata:       datatypes.JSONMap{"full_name": request.Name},
	}

	result = db.Create(&userData)
	if result.Error != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(200, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"userId": userData.UserID,
			"name":   userData.Name,
			"email":  userData.Email,
		},
	})
}

func Signout(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	if err := db.Model(&model.User{}).Where("user_id = ?", userId).Update("refresh_hash", "").Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to clear refresh token"})
		return
	}
	c.JSON(200, gin.H{"message": "Signout successfully"})
}

func NewAccessToken(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userID").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	var user model.User
	result := db.Where("user_id = ?", userId).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Database error"})
		return
	}

	if user.RefreshHash == "" {
		c.JSON(401, gin.H{"error": "Token has been revoked"})
		return
	}

	hash := sha256.Sum256([]byte(refreshToken))
	if err := bcrypt.CompareHashAndPassword([]byte(user.RefreshHash), hash[:]); err != nil {
		c.JSON(401, gin.H{"error": "Invalid refresh token"})
		return
	}

	newAccessToken, err := CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create new access token"})
		return
	}
	c.JSON(200, gin.H{"accessToken": newAccessToken})
}

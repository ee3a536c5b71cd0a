package handlers

import (
	"errors"
	"net/http"

	"easattend.com/easattend/core"
	"easattend.com/easattend/infrastructure/devops"
	"easattend.com/easattend/model"
	"easattend.com/easattend/security"
	"easattend.com/easattend/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func LoginHandler(dm *core.DatabaseManager, cfg devops.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
			return
		}

		var user model.User
		err := dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			return db.Where("email = ?", body.Email).First(&user).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid email or password"))
				return
			}
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		if !security.VerifyPassword(user.PasswordHash, body.Password) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid email or password"))
			return
		}

		token, err := security.CreateIdentityToken(&user, cfg.SigningSecret, cfg.TokenTTLSecs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
			"token": token,
			"user":  user,
		}))
	}
}

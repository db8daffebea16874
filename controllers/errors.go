package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-backend/apperrors"
	"booking-backend/utils"
	"booking-backend/validators"
)

// respondError translates service-layer errors to HTTP responses. Internal
// detail is logged and never sent to the caller.
func respondError(c *gin.Context, err error) {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		utils.JSONError(c, http.StatusBadRequest, verrs.Fields())
		return
	}

	if appErr, ok := apperrors.As(err); ok {
		if appErr.HTTPStatus < http.StatusInternalServerError {
			utils.JSONError(c, appErr.HTTPStatus, appErr.Message)
			return
		}
		log.Printf("Server error: %v", appErr)
		utils.JSONError(c, appErr.HTTPStatus, "Internal server error")
		return
	}

	log.Printf("Server error: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
}

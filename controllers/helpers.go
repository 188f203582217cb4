package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s", name))
		return 0, false
	}
	return id, true
}

// respondServiceError maps rule violations to 400 and anything else to 500.
func respondServiceError(c *gin.Context, err error) {
	if services.IsValidation(err) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}

func respondNotFound(c *gin.Context, what string) {
	utils.RespondError(c, http.StatusNotFound, errors.New(what+" not found"))
}

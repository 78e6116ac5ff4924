package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"spiderhome-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam reads the :id route parameter; on failure it writes the 400
// response itself and returns ok=false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseBoolQuery interprets an optional boolean query parameter ("1"/"true" /
// "0"/"false"); absent or unparseable values mean "no filter".
func parseBoolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	switch raw {
	case "1", "true":
		v := true
		return &v
	case "0", "false":
		v := false
		return &v
	}
	return nil
}

func parseIntQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

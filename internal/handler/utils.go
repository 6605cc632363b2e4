package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/service"
)

func parseID(c *gin.Context, entity string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, service.Invalid("invalid %s id: %q", entity, c.Param("id"))
	}
	return uint(id), nil
}

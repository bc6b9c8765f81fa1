package handler

import (
	"fmt"
	"strconv"

	"mingle_social/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径参数为数字 id，非法时直接写入 400 响应
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.BadRequest(c, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return uint(value), true
}

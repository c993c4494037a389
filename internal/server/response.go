// internal/server/response.go
//
// 統一 HTTP 回應格式：成功回傳 JSON 本體，錯誤一律為 {"error": "..."}。
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// writeErr 輸出錯誤回應。
func writeErr(c *gin.Context, err error, code int) {
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}

// bindJSON 解析請求本體；失敗時直接回 400 並回傳 false。
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		writeErr(c, err, http.StatusBadRequest)
		return false
	}
	return true
}

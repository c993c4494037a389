// internal/server/router.go
//
// HTTP 路由註冊，與 handler.go 分離：handler 負責「如何處理」，router 負責「如何導向」。
// 所有端點同時掛在根路徑與 /api/v1 之下。
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kinvolk/coding-game-service/internal/log"
)

// Router 建立 gin 引擎並註冊所有路由。
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), recovery())

	s.register(r.Group("/"))
	s.register(r.Group("/api/v1"))
	return r
}

func (s *Server) register(g *gin.RouterGroup) {
	g.GET("/health", s.health)

	// 營業狀態
	g.GET("/bank", s.bankState)
	g.POST("/bank/open", s.openBank)
	g.POST("/bank/close", s.closeBank)

	// 帳戶
	g.GET("/accounts", s.listAccounts)
	g.POST("/accounts", s.openAccount)
	g.GET("/accounts/:name", s.getAccount)
	g.DELETE("/accounts/:name", s.closeAccount)
	g.POST("/accounts/:name/deposit", s.deposit)
	g.POST("/accounts/:name/withdraw", s.withdraw)
	g.POST("/accounts/:name/cards", s.issueCard)

	g.POST("/transfer", s.transfer)
	g.POST("/cards/:id/spend", s.spend)
	g.GET("/overdrafts", s.overdrafts)
}

// recovery 把 panic 轉為 500 JSON 回應並記錄日誌。
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic in handler", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// requestLogger 以 debug 等級記錄每個請求。
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}

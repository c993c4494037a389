// cmd/codinggame/main.go

// codinggame 執行完成後的練習：
//   - classes：銀行情境，輸出透支帳戶名稱。
//   - functions：把整數編碼成字串。
//   - serve：以 HTTP 提供銀行操作，啟動時載入、結束時保存 JSON 快照。
package main

import "github.com/kinvolk/coding-game-service/internal/cli"

func main() {
	cli.Execute()
}

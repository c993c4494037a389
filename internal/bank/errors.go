// internal/bank/errors.go
//
// 集中定義領域錯誤。
// 銀行本身的存提款操作只回傳哨兵值；以下錯誤供查詢 API 與上層（HTTP handler）轉換為狀態碼使用。

package bank

import "errors"

var (
	// ErrNotFound 代表帳戶不存在，對應 404。
	ErrNotFound = errors.New("account not found")

	// ErrAccountExists 代表同名帳戶已存在，對應 409。
	ErrAccountExists = errors.New("account already exists")

	// ErrBadName 代表帳戶名稱為空，對應 400。
	ErrBadName = errors.New("account name must not be empty")

	// ErrCardNotFound 代表信用卡不存在，對應 404。
	ErrCardNotFound = errors.New("card not found")
)

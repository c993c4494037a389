// internal/storage/model.go
//
// 定義銀行快照的持久化格式（JSON）。
// 本層只描述資料結構，不含任何商業邏輯；帳戶以建立順序排列，
// 還原後 WhoIsOverdrafted 等依序輸出的查詢結果保持一致。
package storage

import "time"

// Meta 為快照的中繼資料：儲存類型、格式版本、建立時間與備註。
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// PersistAccount 為帳戶在儲存層的格式（名稱即唯一鍵）。
type PersistAccount struct {
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

// Snapshot 為 Bank 的完整狀態。
// 信用卡不屬於銀行狀態，不會被保存。
type Snapshot struct {
	Meta     Meta             `json:"_meta"`
	IsOpen   bool             `json:"is_open"`
	Accounts []PersistAccount `json:"accounts"`
}

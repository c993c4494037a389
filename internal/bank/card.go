// internal/bank/card.go

package bank

import "github.com/google/uuid"

// CreditCard 綁定唯一一個帳戶，但不擁有它。
// 信用卡可在銀行打烊時照常消費：扣款直接作用在帳戶上，不經過 Bank 的營業時間檢查。
type CreditCard struct {
	ID      uuid.UUID
	account *Account
}

// Spend 直接從綁定帳戶扣除 amount，允許透支；amount <= 0 時不做任何事。
func (c *CreditCard) Spend(amount int64) {
	if amount <= 0 {
		return
	}
	c.account.debit(amount)
}

// AccountName 回傳此卡扣款的帳戶名稱。
func (c *CreditCard) AccountName() string {
	return c.account.Name()
}

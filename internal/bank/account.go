// internal/bank/account.go

// Package bank 定義核心領域模型：帳戶、信用卡、銀行與固定的示範情境。
// 領域層的誤用（非法金額、銀行打烊、帳戶不存在）一律以哨兵值（0、nil、false）表示「沒有效果」，
// 不回傳錯誤；金額以 int64 最小貨幣單位儲存，允許為負（透支）。
package bank

import (
	"sync"

	"github.com/google/uuid"
)

// Account 為單一帳戶。餘額可為負值，負值即代表透支。
// 信用卡會繞過 Bank 直接扣款，因此每個帳戶自帶一把鎖保護餘額。
type Account struct {
	mu      sync.Mutex
	name    string
	balance int64
}

// Report 為帳戶狀態的快照。
type Report struct {
	InOverdraft bool   `json:"in_overdraft"`
	Balance     int64  `json:"balance"`
	Name        string `json:"name"`
}

func newAccount(name string, balance int64) *Account {
	return &Account{name: name, balance: balance}
}

// Name 回傳帳戶名稱（銀行內唯一）。
func (a *Account) Name() string { return a.name }

// Balance 回傳目前餘額。
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Withdraw 提款並回傳實際提出的金額。
// amount <= 0 時回傳 0；餘額必須嚴格大於 0 才能提款，但提款金額可以超過餘額（進入透支）。
// 餘額不為正時回傳 0，表示沒有提出任何款項。
func (a *Account) Withdraw(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance <= 0 {
		return 0
	}
	a.balance -= amount
	return amount
}

// Deposit 存款；負數金額直接忽略，0 不影響餘額。
func (a *Account) Deposit(amount int64) {
	if amount < 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
}

// Report 產生帳戶目前狀態的報告。
func (a *Account) Report() Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Report{InOverdraft: a.balance < 0, Balance: a.balance, Name: a.name}
}

// Card 為此帳戶發行一張新的信用卡。
func (a *Account) Card() *CreditCard {
	return &CreditCard{ID: uuid.New(), account: a}
}

// debit 無條件扣款，供信用卡使用。
func (a *Account) debit(amount int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance -= amount
}

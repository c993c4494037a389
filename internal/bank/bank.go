// internal/bank/bank.go

package bank

import (
	"github.com/kinvolk/coding-game-service/internal/log"
	"github.com/kinvolk/coding-game-service/internal/storage"
	"sync"
)

// Bank 為聚合根：管理所有帳戶與營業狀態。
// - mu：序列化對帳戶索引與營業狀態的讀寫；鎖序固定為 Bank.mu → Account.mu。
// - accts：名稱 → 帳戶；order 保留建立順序，讓查詢結果具決定性。
// - isOpen：只有 open / closed 兩種狀態，初始為 closed。
type Bank struct {
	mu     sync.Mutex
	isOpen bool
	accts  map[string]*Account
	order  []string
}

// NewBank 建立沒有帳戶、尚未營業的銀行。
func NewBank() *Bank {
	return &Bank{accts: make(map[string]*Account)}
}

// Open 開始營業。
func (b *Bank) Open() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.isOpen = true
	log.Debug("bank opened")
}

// Close 結束營業。
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.isOpen = false
	log.Debug("bank closed")
}

// IsOpen 回報銀行是否營業中。
func (b *Bank) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isOpen
}

// OpenAccount 以 name 開立餘額為 0 的帳戶。
// 同名帳戶已存在時回傳 nil；存在與否以索引中是否有此鍵判斷，與餘額無關。
func (b *Bank) OpenAccount(name string) *Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accts[name]; ok {
		log.Debug("open account refused", "account", name, "reason", "exists")
		return nil
	}
	a := newAccount(name, 0)
	b.accts[name] = a
	b.order = append(b.order, name)
	return a
}

// CloseAccount 關閉帳戶並回傳最後的報告；帳戶不存在時回傳 false。
func (b *Bank) CloseAccount(name string) (Report, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[name]
	if !ok {
		return Report{}, false
	}
	r := a.Report()
	delete(b.accts, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return r, true
}

// Account 依名稱取得帳戶本身（例如為其發卡）。
func (b *Bank) Account(name string) (*Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[name]
	return a, ok
}

// Get 回傳帳戶報告；不存在回傳 ErrNotFound。
func (b *Bank) Get(name string) (Report, error) {
	a, ok := b.Account(name)
	if !ok {
		return Report{}, ErrNotFound
	}
	return a.Report(), nil
}

// Reports 依建立順序回傳所有帳戶報告。
func (b *Bank) Reports() []Report {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Report, 0, len(b.order))
	for _, n := range b.order {
		out = append(out, b.accts[n].Report())
	}
	return out
}

// WithdrawMoney 在櫃台提款，回傳實際提出的金額。
// 銀行打烊或帳戶不存在時回傳 0，其餘交由 Account.Withdraw 決定。
func (b *Bank) WithdrawMoney(name string, amount int64) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.isOpen {
		log.Debug("withdraw refused", "account", name, "amount", amount, "reason", "bank closed")
		return 0
	}
	a, ok := b.accts[name]
	if !ok {
		log.Debug("withdraw refused", "account", name, "amount", amount, "reason", "no such account")
		return 0
	}
	return a.Withdraw(amount)
}

// DepositMoney 在櫃台存款；銀行打烊或帳戶不存在時不做任何事。
// amount 為 0（例如一筆被拒絕的提款結果）時同樣安全。
func (b *Bank) DepositMoney(name string, amount int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.isOpen {
		log.Debug("deposit refused", "account", name, "amount", amount, "reason", "bank closed")
		return
	}
	a, ok := b.accts[name]
	if !ok {
		log.Debug("deposit refused", "account", name, "amount", amount, "reason", "no such account")
		return
	}
	a.Deposit(amount)
}

// Transfer 從 from 提款並存入 to，回傳實際移轉的金額。
// 兩步各自受營業狀態約束；提款沒有結果時，存入的是 0。
func (b *Bank) Transfer(from, to string, amount int64) int64 {
	moved := b.WithdrawMoney(from, amount)
	b.DepositMoney(to, moved)
	return moved
}

// WhoIsOverdrafted 依建立順序回傳所有透支帳戶的名稱；沒有時回傳空切片。
func (b *Bank) WhoIsOverdrafted() []string {
	names := []string{}
	for _, r := range b.Reports() {
		if r.InOverdraft {
			names = append(names, r.Name)
		}
	}
	return names
}

// Snapshot 匯出可持久化的銀行狀態（帳戶依建立順序）。
func (b *Bank) Snapshot() storage.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := storage.Snapshot{
		Meta: storage.Meta{
			Storage: storage.Kind,
			Version: storage.Version,
		},
		IsOpen:   b.isOpen,
		Accounts: make([]storage.PersistAccount, 0, len(b.order)),
	}
	for _, n := range b.order {
		s.Accounts = append(s.Accounts, storage.PersistAccount{Name: n, Balance: b.accts[n].Balance()})
	}
	return s
}

// Restore 以快照取代目前的全部狀態；快照中重複的名稱只保留第一筆。
// 已發行的信用卡仍指向舊帳戶，不會隨之轉移。
func (b *Bank) Restore(s storage.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.isOpen = s.IsOpen
	b.accts = make(map[string]*Account, len(s.Accounts))
	b.order = b.order[:0]
	for _, pa := range s.Accounts {
		if _, dup := b.accts[pa.Name]; dup {
			log.Warn("duplicate account in snapshot", "account", pa.Name)
			continue
		}
		b.accts[pa.Name] = newAccount(pa.Name, pa.Balance)
		b.order = append(b.order, pa.Name)
	}
}

// internal/server/handler.go
//
// Package server 以 HTTP 提供 bank 模組的操作介面。
// 每個 handler 僅負責：解析請求、呼叫 bank、回傳 JSON；狀態變更成功後呼叫 persist 寫入快照。
// 櫃台存提款在銀行打烊時不會失敗，而是回傳「沒有效果」的結果（withdrawn=0、bank_open=false），
// 與 bank 層的哨兵值語意一致。
package server

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kinvolk/coding-game-service/internal/bank"
	"github.com/kinvolk/coding-game-service/internal/log"
)

// Server 為 HTTP 層核心結構：
// - Bank：注入的銀行核心。
// - persist：持久化鉤子，可為 nil。
// - cards：已發行的信用卡（ID → 卡），只存在記憶體中。
type Server struct {
	Bank    *bank.Bank
	persist func() error

	mu    sync.Mutex
	cards map[uuid.UUID]*bank.CreditCard
}

// NewServer 建立新的 HTTP 伺服器。persist 若非 nil，會在每次成功變更後觸發。
func NewServer(b *bank.Bank, persist func() error) *Server {
	return &Server{Bank: b, persist: persist, cards: make(map[uuid.UUID]*bank.CreditCard)}
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

// save 觸發持久化；失敗只記錄日誌，不影響已送出的回應。
func (s *Server) save() {
	if s.persist == nil {
		return
	}
	if err := s.persist(); err != nil {
		log.Error("persist snapshot failed", "error", err)
	}
}

// account 取得路徑中的帳戶；不存在時回 404 並回傳 false。
func (s *Server) account(c *gin.Context) (string, bool) {
	name := c.Param("name")
	if _, ok := s.Bank.Account(name); !ok {
		writeErr(c, bank.ErrNotFound, http.StatusNotFound)
		return "", false
	}
	return name, true
}

// health：GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bankState：GET /bank
func (s *Server) bankState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"is_open": s.Bank.IsOpen()})
}

// openBank：POST /bank/open
func (s *Server) openBank(c *gin.Context) {
	s.Bank.Open()
	c.JSON(http.StatusOK, gin.H{"is_open": true})
	s.save()
}

// closeBank：POST /bank/close
func (s *Server) closeBank(c *gin.Context) {
	s.Bank.Close()
	c.JSON(http.StatusOK, gin.H{"is_open": false})
	s.save()
}

// listAccounts：GET /accounts，依建立順序。
func (s *Server) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, s.Bank.Reports())
}

// openAccount：POST /accounts {"name": "..."}
// 開戶不受營業時間限制。
func (s *Server) openAccount(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeErr(c, bank.ErrBadName, http.StatusBadRequest)
		return
	}
	a := s.Bank.OpenAccount(name)
	if a == nil {
		writeErr(c, bank.ErrAccountExists, http.StatusConflict)
		return
	}
	c.JSON(http.StatusCreated, a.Report())
	s.save()
}

// getAccount：GET /accounts/:name
func (s *Server) getAccount(c *gin.Context) {
	r, err := s.Bank.Get(c.Param("name"))
	if err != nil {
		writeErr(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, r)
}

// closeAccount：DELETE /accounts/:name，回傳最後的報告。
// 已發行的卡片一併作廢。
func (s *Server) closeAccount(c *gin.Context) {
	name := c.Param("name")
	r, ok := s.Bank.CloseAccount(name)
	if !ok {
		writeErr(c, bank.ErrNotFound, http.StatusNotFound)
		return
	}
	s.mu.Lock()
	for id, card := range s.cards {
		if card.AccountName() == name {
			delete(s.cards, id)
		}
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, r)
	s.save()
}

// deposit：POST /accounts/:name/deposit {"amount": n}
func (s *Server) deposit(c *gin.Context) {
	name, ok := s.account(c)
	if !ok {
		return
	}
	var req amountRequest
	if !bindJSON(c, &req) {
		return
	}
	s.Bank.DepositMoney(name, req.Amount)
	r, _ := s.Bank.Get(name)
	c.JSON(http.StatusOK, gin.H{"account": r, "bank_open": s.Bank.IsOpen()})
	s.save()
}

// withdraw：POST /accounts/:name/withdraw {"amount": n}
// withdrawn 為實際提出的金額，0 表示沒有提款。
func (s *Server) withdraw(c *gin.Context) {
	name, ok := s.account(c)
	if !ok {
		return
	}
	var req amountRequest
	if !bindJSON(c, &req) {
		return
	}
	got := s.Bank.WithdrawMoney(name, req.Amount)
	r, _ := s.Bank.Get(name)
	c.JSON(http.StatusOK, gin.H{"withdrawn": got, "account": r, "bank_open": s.Bank.IsOpen()})
	s.save()
}

// transfer：POST /transfer {"from": "...", "to": "...", "amount": n}
func (s *Server) transfer(c *gin.Context) {
	var req struct {
		From   string `json:"from"`
		To     string `json:"to"`
		Amount int64  `json:"amount"`
	}
	if !bindJSON(c, &req) {
		return
	}
	for _, n := range []string{req.From, req.To} {
		if _, ok := s.Bank.Account(n); !ok {
			writeErr(c, bank.ErrNotFound, http.StatusNotFound)
			return
		}
	}
	moved := s.Bank.Transfer(req.From, req.To, req.Amount)
	from, _ := s.Bank.Get(req.From)
	to, _ := s.Bank.Get(req.To)
	c.JSON(http.StatusOK, gin.H{"moved": moved, "from": from, "to": to, "bank_open": s.Bank.IsOpen()})
	s.save()
}

// issueCard：POST /accounts/:name/cards
func (s *Server) issueCard(c *gin.Context) {
	name := c.Param("name")
	a, ok := s.Bank.Account(name)
	if !ok {
		writeErr(c, bank.ErrNotFound, http.StatusNotFound)
		return
	}
	card := a.Card()
	s.mu.Lock()
	s.cards[card.ID] = card
	s.mu.Unlock()
	c.JSON(http.StatusCreated, gin.H{"id": card.ID.String(), "account": name})
}

// spend：POST /cards/:id/spend {"amount": n}，不受營業時間限制。
func (s *Server) spend(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeErr(c, errors.Join(bank.ErrCardNotFound, err), http.StatusNotFound)
		return
	}
	s.mu.Lock()
	card, ok := s.cards[id]
	s.mu.Unlock()
	if !ok {
		writeErr(c, bank.ErrCardNotFound, http.StatusNotFound)
		return
	}
	var req amountRequest
	if !bindJSON(c, &req) {
		return
	}
	card.Spend(req.Amount)
	r, _ := s.Bank.Get(card.AccountName())
	c.JSON(http.StatusOK, r)
	s.save()
}

// overdrafts：GET /overdrafts
func (s *Server) overdrafts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"names": s.Bank.WhoIsOverdrafted()})
}

// internal/server/server_test.go
//
// server 層的整合測試：以 httptest.Server 走完整 HTTP 流程，
// 驗證 REST API 與 bank 層的整合、營業時間語意、錯誤代碼映射，以及 persist 鉤子的觸發。
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kinvolk/coding-game-service/internal/bank"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// doJSON 送出 JSON 請求並驗證狀態碼；out 非 nil 時解析回應。
func doJSON(t *testing.T, c *http.Client, method, url string, body any, wantCode int, out any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantCode {
		t.Fatalf("%s %s code=%d want=%d", method, url, resp.StatusCode, wantCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
}

type moneyResp struct {
	Withdrawn int64       `json:"withdrawn"`
	Account   bank.Report `json:"account"`
	BankOpen  bool        `json:"bank_open"`
}

type transferResp struct {
	Moved    int64       `json:"moved"`
	From     bank.Report `json:"from"`
	To       bank.Report `json:"to"`
	BankOpen bool        `json:"bank_open"`
}

// TestHTTPScenarioAndPersistHook 以 HTTP 重現示範情境。
func TestHTTPScenarioAndPersistHook(t *testing.T) {
	var persistCalls int32

	s := NewServer(bank.NewBank(), func() error {
		atomic.AddInt32(&persistCalls, 1)
		return nil
	})
	ts := httptest.NewServer(s.Router())
	defer ts.Close()
	cli := ts.Client()

	doJSON(t, cli, "POST", ts.URL+"/bank/open", nil, 200, nil)
	for _, n := range []string{"alan", "bob", "alice"} {
		var r bank.Report
		doJSON(t, cli, "POST", ts.URL+"/accounts", map[string]any{"name": n}, 201, &r)
		if r.Name != n || r.Balance != 0 {
			t.Fatalf("created=%+v", r)
		}
	}
	for n, amt := range map[string]int64{"alan": 100, "bob": 50, "alice": 150} {
		doJSON(t, cli, "POST", ts.URL+"/accounts/"+n+"/deposit", map[string]any{"amount": amt}, 200, nil)
	}

	var card struct {
		ID      string `json:"id"`
		Account string `json:"account"`
	}
	doJSON(t, cli, "POST", ts.URL+"/accounts/alice/cards", nil, 201, &card)
	if card.ID == "" || card.Account != "alice" {
		t.Fatalf("card=%+v", card)
	}

	var tr transferResp
	doJSON(t, cli, "POST", ts.URL+"/transfer", map[string]any{"from": "bob", "to": "alice", "amount": 20}, 200, &tr)
	if tr.Moved != 20 || tr.From.Balance != 30 || tr.To.Balance != 170 {
		t.Fatalf("transfer 1=%+v", tr)
	}
	doJSON(t, cli, "POST", ts.URL+"/transfer", map[string]any{"from": "bob", "to": "alan", "amount": 40}, 200, &tr)
	if tr.From.Balance != -10 || !tr.From.InOverdraft || tr.To.Balance != 140 {
		t.Fatalf("transfer 2=%+v", tr)
	}

	doJSON(t, cli, "POST", ts.URL+"/bank/close", nil, 200, nil)
	doJSON(t, cli, "POST", ts.URL+"/transfer", map[string]any{"from": "alan", "to": "bob", "amount": 10}, 200, &tr)
	if tr.Moved != 0 || tr.BankOpen || tr.From.Balance != 140 || tr.To.Balance != -10 {
		t.Fatalf("closed transfer should be a no-op: %+v", tr)
	}

	var alice bank.Report
	doJSON(t, cli, "POST", ts.URL+"/cards/"+card.ID+"/spend", map[string]any{"amount": 40}, 200, &alice)
	if alice.Balance != 130 {
		t.Fatalf("alice=%+v want balance 130", alice)
	}

	var od struct {
		Names []string `json:"names"`
	}
	doJSON(t, cli, "GET", ts.URL+"/api/v1/overdrafts", nil, 200, &od)
	if !reflect.DeepEqual(od.Names, []string{"bob"}) {
		t.Fatalf("overdrafts=%v want=[bob]", od.Names)
	}

	// open + 3 開戶 + 3 存款 + 2 轉帳 + close + 1 轉帳 + 1 消費
	if calls := atomic.LoadInt32(&persistCalls); calls != 12 {
		t.Fatalf("persist calls=%d want=12", calls)
	}
}

// TestClosedBankCounter 驗證打烊時櫃台存提款回傳「沒有效果」。
func TestClosedBankCounter(t *testing.T) {
	b := bank.NewBank()
	b.Open()
	b.OpenAccount("alan")
	b.DepositMoney("alan", 100)
	b.Close()

	ts := httptest.NewServer(NewServer(b, nil).Router())
	defer ts.Close()
	cli := ts.Client()

	var mr moneyResp
	doJSON(t, cli, "POST", ts.URL+"/accounts/alan/withdraw", map[string]any{"amount": 10}, 200, &mr)
	if mr.Withdrawn != 0 || mr.BankOpen || mr.Account.Balance != 100 {
		t.Fatalf("withdraw while closed=%+v", mr)
	}
	doJSON(t, cli, "POST", ts.URL+"/accounts/alan/deposit", map[string]any{"amount": 10}, 200, &mr)
	if mr.Account.Balance != 100 {
		t.Fatalf("deposit while closed=%+v", mr)
	}

	var state struct {
		IsOpen bool `json:"is_open"`
	}
	doJSON(t, cli, "POST", ts.URL+"/bank/open", nil, 200, nil)
	doJSON(t, cli, "GET", ts.URL+"/bank", nil, 200, &state)
	if !state.IsOpen {
		t.Fatal("bank should be open")
	}
	doJSON(t, cli, "POST", ts.URL+"/accounts/alan/withdraw", map[string]any{"amount": 10}, 200, &mr)
	if mr.Withdrawn != 10 || mr.Account.Balance != 90 {
		t.Fatalf("withdraw while open=%+v", mr)
	}
}

// TestAccountLifecycleAndErrors 驗證開關戶與錯誤代碼映射。
func TestAccountLifecycleAndErrors(t *testing.T) {
	s := NewServer(bank.NewBank(), nil)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()
	cli := ts.Client()

	doJSON(t, cli, "POST", ts.URL+"/accounts", map[string]any{"name": "bob"}, 201, nil)
	doJSON(t, cli, "POST", ts.URL+"/accounts", map[string]any{"name": "bob"}, 409, nil)
	doJSON(t, cli, "POST", ts.URL+"/accounts", map[string]any{"name": "  "}, 400, nil)
	doJSON(t, cli, "GET", ts.URL+"/accounts/nobody", nil, 404, nil)
	doJSON(t, cli, "POST", ts.URL+"/accounts/nobody/deposit", map[string]any{"amount": 1}, 404, nil)
	doJSON(t, cli, "POST", ts.URL+"/transfer", map[string]any{"from": "bob", "to": "nobody", "amount": 1}, 404, nil)
	doJSON(t, cli, "POST", ts.URL+"/cards/not-a-uuid/spend", map[string]any{"amount": 1}, 404, nil)

	var card struct {
		ID string `json:"id"`
	}
	doJSON(t, cli, "POST", ts.URL+"/accounts/bob/cards", nil, 201, &card)

	var list []bank.Report
	doJSON(t, cli, "GET", ts.URL+"/accounts", nil, 200, &list)
	if len(list) != 1 || list[0].Name != "bob" {
		t.Fatalf("list=%+v", list)
	}

	var final bank.Report
	doJSON(t, cli, "DELETE", ts.URL+"/accounts/bob", nil, 200, &final)
	if final.Name != "bob" {
		t.Fatalf("final=%+v", final)
	}
	doJSON(t, cli, "DELETE", ts.URL+"/accounts/bob", nil, 404, nil)
	// 帳戶關閉後卡片作廢
	doJSON(t, cli, "POST", ts.URL+"/cards/"+card.ID+"/spend", map[string]any{"amount": 1}, 404, nil)

	// JSON 格式錯誤 → 400
	doJSON(t, cli, "POST", ts.URL+"/accounts", map[string]any{"name": "alan"}, 201, nil)
	req, _ := http.NewRequest("POST", ts.URL+"/accounts/alan/deposit", bytes.NewBufferString("{bad json}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := cli.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Fatalf("bad json code=%d want 400", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	r := NewServer(bank.NewBank(), nil).Router()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != 200 || !bytes.Contains(w.Body.Bytes(), []byte(`"ok"`)) {
		t.Fatalf("health code=%d body=%s", w.Code, w.Body.String())
	}
}

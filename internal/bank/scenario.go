// internal/bank/scenario.go

package bank

// 情境中的帳戶名稱。
const (
	Alan  = "alan"
	Bob   = "bob"
	Alice = "alice"
)

// RunScenario 執行固定的示範情境，回傳情境結束後的銀行與透支帳戶名稱。
//
// 營業中：開戶 alan、bob、alice 並各存 100 / 50 / 150；alice 領一張信用卡；
// bob 轉 20 給 alice、再轉 40 給 alan（bob 進入透支）。
// 打烊後：alan 轉 10 給 bob 不會成功；alice 的信用卡照常消費 40。
func RunScenario() (*Bank, []string) {
	b := NewBank()
	b.Open()

	b.OpenAccount(Alan)
	b.OpenAccount(Bob)
	alice := b.OpenAccount(Alice)

	b.DepositMoney(Alan, 100)
	b.DepositMoney(Bob, 50)
	b.DepositMoney(Alice, 150)

	credit := alice.Card()

	b.Transfer(Bob, Alice, 20)
	b.Transfer(Bob, Alan, 40)

	b.Close()
	b.Transfer(Alan, Bob, 10)

	credit.Spend(40)

	return b, b.WhoIsOverdrafted()
}

// internal/pipeline/parse.go

package pipeline

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Period 為 2 × lcm(1..26)。
// 兩個同餘於 Period 的整數奇偶相同，且在任何 1..26 的循環長度下編碼出同一個字母。
const Period = 53542288800

var bigPeriod = big.NewInt(Period)

// ParseNumbers 把命令列參數解析為十進位整數；任何一個失敗即回傳錯誤並指出是哪個參數。
// 超出 int64 的整數以同餘於 Period 的代表值取代，編碼結果不變。
func ParseNumbers(args []string) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			n, err = reduceBig(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func reduceBig(s string) (int64, error) {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	// big.Int.Mod 為歐幾里得餘數，結果介於 0 與 Period 之間
	return z.Mod(z, bigPeriod).Int64(), nil
}

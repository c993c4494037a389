// internal/pipeline/encoder.go

package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultWrap 為字母對應的循環長度。
// 預設以 24 循環，因此 'y'、'z' 永遠不會出現；需要完整字母表時以 NewEncoder(AlphabetSize) 取得。
const DefaultWrap = 24

// AlphabetSize 為可用的最大循環長度。
const AlphabetSize = 26

// ErrBadWrap 代表循環長度不在 1..26 之間。
var ErrBadWrap = errors.New("wrap must be between 1 and 26")

var defaultEncoder = &Encoder{wrap: DefaultWrap}

// Encoder 持有字母對應的循環長度。
type Encoder struct {
	wrap int64
}

// NewEncoder 建立指定循環長度的 Encoder。
func NewEncoder(wrap int) (*Encoder, error) {
	if wrap < 1 || wrap > AlphabetSize {
		return nil, fmt.Errorf("%w: %d", ErrBadWrap, wrap)
	}
	return &Encoder{wrap: int64(wrap)}, nil
}

// Wrap 回傳循環長度。
func (e *Encoder) Wrap() int { return int(e.wrap) }

// Letter 回傳 'a' + (n mod wrap)，取餘數向下取整，超出範圍時循環。
func (e *Encoder) Letter(n int64) rune {
	return 'a' + rune(floorMod(n, e.wrap))
}

// Encode 依固定順序執行整條函式鏈。
func (e *Encoder) Encode(numbers []int64) string {
	var b strings.Builder
	for _, n := range RemoveEvens(numbers) {
		// 先把 n 與差值化約到小範圍再平方，任何 int64 都不會溢位
		r := floorMod(n, Period)
		b.WriteRune(e.Letter(MultiplyBySelf(floorMod(SubtractOneHalf(r, r*5), e.wrap))))
	}
	return CapitaliseVowels(b.String())
}

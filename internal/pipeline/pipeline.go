// internal/pipeline/pipeline.go

// Package pipeline 實作把一串整數編碼成字串的函式鏈：
// 去掉偶數 → 每個數 n 減去 n×5 的一半 → 平方 → 對應字母 → 母音大寫。
// 所有函式皆為純函式；整數除法與取餘數一律向下取整（floor），負數輸入也有確定結果。
package pipeline

import "strings"

// MultiplyBySelf 回傳 n 的平方。
func MultiplyBySelf(n int64) int64 {
	return n * n
}

// SubtractOneHalf 回傳 n 減去 toHalve 的一半（向下取整）。
func SubtractOneHalf(n, toHalve int64) int64 {
	return n - floorDiv(toHalve, 2)
}

// RemoveEvens 保留奇數（含負奇數），順序不變。
func RemoveEvens(numbers []int64) []int64 {
	out := make([]int64, 0, len(numbers))
	for _, n := range numbers {
		if n%2 != 0 {
			out = append(out, n)
		}
	}
	return out
}

// CorrespondingLetter 以預設的 DefaultWrap 把 n 對應到字母。
func CorrespondingLetter(n int64) rune {
	return defaultEncoder.Letter(n)
}

// CapitaliseVowels 把 a、e、i、o、u 轉成大寫，其餘字元不變。
func CapitaliseVowels(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			return r - 'a' + 'A'
		}
		return r
	}, s)
}

// Encode 以預設的 DefaultWrap 編碼 numbers。
func Encode(numbers []int64) string {
	return defaultEncoder.Encode(numbers)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

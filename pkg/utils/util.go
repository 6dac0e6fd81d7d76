package utils

import (
	"strings"

	"github.com/speps/go-hashids/v2"
)

const partnerCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenPartnerCode 根据用户ID生成配对码，同一个盐值下结果唯一
func GenPartnerCode(salt string, id uint64) (string, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	hd.Alphabet = partnerCodeAlphabet
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{int64(id)})
}

// NormalizeCode 去掉用户输入配对码时多余的空白
func NormalizeCode(code string) string {
	return strings.TrimSpace(code)
}

// Truncate 按字符截断字符串，用于推送正文
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

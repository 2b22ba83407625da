package util

import (
	"strconv"
)

// MustParseUint 문자열을 부호 없는 정수로 변환한다. 실패하면 0.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

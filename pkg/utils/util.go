package utils

import (
	"fmt"
	"strings"

	"github.com/speps/go-hashids/v2"
)

const (
	hashMinLength = 8
	hashAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	orderPrefix   = "ORD-"
)

func newHasher(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = hashMinLength
	hd.Alphabet = hashAlphabet
	return hashids.NewWithData(hd)
}

// GenHashID 订单对外编号，例如 "ORD-5XK2M9QP"
func GenHashID(salt string, id uint64) (string, error) {
	h, err := newHasher(salt)
	if err != nil {
		return "", err
	}
	e, err := h.EncodeInt64([]int64{int64(id)})
	if err != nil {
		return "", err
	}
	return orderPrefix + e, nil
}

// DecodeHashID GenHashID 的逆运算
func DecodeHashID(salt string, ref string) (uint64, error) {
	h, err := newHasher(salt)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(strings.TrimPrefix(ref, orderPrefix))
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("invalid reference %q", ref)
	}
	return uint64(ids[0]), nil
}

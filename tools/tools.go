package tools

import (
	"crypto/sha512"
	"encoding/hex"
	"math/rand"
	"sync"
	"time"
)

var (
	randMu     sync.Mutex
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func EncryptTextSHA512(text string) string {
	sum := sha512.Sum512([]byte(text))
	return hex.EncodeToString(sum[:])
}

// HashPassword aplica o esquema de senha do sistema: sha512(email + ":" + sha512(senha)).
func HashPassword(email, password string) string {
	passwordEncode := EncryptTextSHA512(password)
	passwordEncode = email + ":" + passwordEncode
	return EncryptTextSHA512(passwordEncode)
}

// RandomInt retorna um inteiro em [min, max].
func RandomInt(min, max int) int {
	if max <= min {
		return min
	}
	randMu.Lock()
	defer randMu.Unlock()
	return min + seededRand.Intn(max-min+1)
}

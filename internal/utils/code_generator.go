package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character set for reference codes: uppercase letters and numbers only
const refCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCodigoRef gera um código de referência para imóvel no formato
// IM-XXXXXX (ex: IM-F34JON). O código é exibido em anúncios e usado pelos
// corretores para localizar o imóvel rapidamente.
func GenerateCodigoRef() string {
	const codeLength = 6
	result := make([]byte, codeLength)

	charsetLen := big.NewInt(int64(len(refCodeChars)))

	for i := 0; i < codeLength; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			// Fallback to pseudo-random if crypto/rand fails
			// This should never happen in practice
			randomIndex = big.NewInt(int64(i % len(refCodeChars)))
		}
		result[i] = refCodeChars[randomIndex.Int64()]
	}

	return fmt.Sprintf("IM-%s", string(result))
}

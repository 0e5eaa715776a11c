// random — генерация случайных печатаемых строк для значений токенов и солей.
//
// Генератор «строгий»: в результате обязан присутствовать хотя бы один символ
// каждого класса (строчные, заглавные, цифры, спецсимволы). Из алфавита
// исключены визуально похожие символы (iI1loO0"'`|), чтобы значение можно было
// безошибочно прочитать и продиктовать.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	lowercase = "abcdefghjkmnpqrstuvwxyz"
	uppercase = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digits    = "23456789"
	symbols   = "!#$%&()*+,-./:;<=>?@[]^_{}~"

	alphabet = lowercase + uppercase + digits + symbols

	// Вероятность не собрать все четыре класса за одну попытку при length >= 4
	// исчезающе мала; лимит существует только как страховка от вечного цикла.
	maxAttempts = 64
)

// String возвращает случайную строку длины length, в которой встречаются все
// четыре класса символов. Минимальная длина — 4 (по символу на класс).
// Ошибка источника энтропии фатальна и возвращается как есть, без повторов.
func String(length int) (string, error) {
	const op = "random.String"

	if length < 4 {
		return "", fmt.Errorf("%s: length %d is too short for strict generation", op, length)
	}

	max := big.NewInt(int64(len(alphabet)))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := make([]byte, length)
		for i := range b {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("%s: %w", op, err)
			}
			b[i] = alphabet[n.Int64()]
		}

		s := string(b)
		if strings.ContainsAny(s, lowercase) &&
			strings.ContainsAny(s, uppercase) &&
			strings.ContainsAny(s, digits) &&
			strings.ContainsAny(s, symbols) {
			return s, nil
		}
	}

	return "", fmt.Errorf("%s: failed to satisfy character class constraint", op)
}

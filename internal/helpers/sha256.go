package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// SHA256 returns the hex encoded digest of input.
func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}

// SHA256Reader hashes everything read from reader.
func SHA256Reader(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// ShortSHA256 returns the first n characters of the digest of input, or the whole
// digest when n is out of range.
func ShortSHA256(input []byte, n int) string {
	sum := SHA256Bytes(input)
	if n <= 0 || n > len(sum) {
		return sum
	}
	return sum[:n]
}

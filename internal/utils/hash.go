package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// CatalogDigest computes the request signature the catalog expects:
// the hex-encoded MD5 of ts + privateKey + publicKey.
//
// Example usage:
//
//	hash := utils.CatalogDigest("1", "abcd", "1234")
//	// hash == "ffd275c5130566a2916217b101f26150"
func CatalogDigest(ts, privateKey, publicKey string) string {
	sum := md5.Sum([]byte(ts + privateKey + publicKey))
	return hex.EncodeToString(sum[:])
}

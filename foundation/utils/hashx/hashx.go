// File: hashx.go
// Title: MD5 Digests
// Description: MD5 digests of strings and streams in raw, hexadecimal and
//              base64 form. MD5 is provided for checksums and legacy keys,
//              not for security.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package hashx

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

// MD5Bytes returns the 16 byte MD5 digest of the UTF-8 bytes of s.
func MD5Bytes(s string) []byte {
	sum := md5.Sum([]byte(s))
	return sum[:]
}

// MD5Hex returns the digest of s as 32 lower-case hex digits.
func MD5Hex(s string) string {
	return hex.EncodeToString(MD5Bytes(s))
}

// MD5Base64 returns the digest of s in standard padded base64.
func MD5Base64(s string) string {
	return base64.StdEncoding.EncodeToString(MD5Bytes(s))
}

// MD5Reader hashes everything read from r and returns the hex digest.
func MD5Reader(r io.Reader) (string, error) {
	hash := md5.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", errors.OperationFailed(errors.ModuleHashx, "MD5Reader", err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

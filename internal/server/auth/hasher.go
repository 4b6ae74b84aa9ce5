// Package auth implements the credential primitives of the server:
// password hashing at rest and issuance/verification of bearer tokens.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/kyraymege/bookmarkd/internal/common"
)

// Argon2id parameters. Changing them only affects newly created hashes:
// verification always uses the parameters encoded in the stored hash.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLength   = 16
)

// HashPassword derives an Argon2id digest over a fresh random salt and
// returns it in the standard self-describing encoded form, so no separate
// salt storage is needed. Password strength policy is not enforced here.
func HashPassword(password string) (string, error) {
	salt := common.GenerateRandByteArray(saltLength)
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassword reports whether password matches the encoded hash.
// A malformed or foreign-format hash yields false, never an error: stored
// hashes are live data and must not become a crash path.
func VerifyPassword(encodedHash, password string) bool {
	salt, key, time, memory, threads, ok := decodeHash(encodedHash)
	if !ok {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func decodeHash(encoded string) (salt, key []byte, time, memory uint32, threads uint8, ok bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, false
	}

	var err error
	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, nil, 0, 0, 0, false
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, false
	}

	return salt, key, time, memory, threads, true
}

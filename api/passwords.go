package main

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// decoyHash is a digest of a random throwaway password. Login compares
// against it when the email is unknown so that both failure paths perform
// one bcrypt comparison.
var decoyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func hashPassword(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
}

// passwordMatches reports whether plaintext matches the stored digest.
// Any mismatch, including a malformed digest, is reported as false.
func passwordMatches(plaintext string, digest []byte) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(plaintext)) == nil
}

package utils

import (
	"github.com/twmb/murmur3"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

// HashStrings hashes the concatenation of ss with a separator byte between parts,
// so ["ab", "c"] and ["a", "bc"] differ.
func HashStrings(ss ...string) uint64 {
	hash := murmur3.New64()
	sep := []byte{0}
	for _, s := range ss {
		if _, err := hash.Write([]byte(s)); err != nil {
			panic(err)
		}
		if _, err := hash.Write(sep); err != nil {
			panic(err)
		}
	}
	return hash.Sum64()
}

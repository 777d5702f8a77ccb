package engine

import (
	"log"
	"math/rand"
)

// bookRandSeed seeds the book-move PRNG deterministically, so a
// single-threaded run picks the same book replies given the same seed.
const bookRandSeed = 0xC0DE

// mustLoadOpeningBook loads the book at path or aborts the process: a
// missing or empty book at startup is fatal.
func mustLoadOpeningBook(path string) *OpeningBook {
	book, err := LoadOpeningBook(path)
	if err != nil {
		log.Fatal(err)
	}
	return book
}

func newBookRand() *rand.Rand {
	return rand.New(rand.NewSource(bookRandSeed))
}

package a

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand"
)

func drawGlobal() int {
	return rand.Intn(30) + 1 // want `avoid the global math/rand functions; use an injected \*rand\.Rand`
}

func seedGlobal() {
	rand.Seed(42) // want `avoid the global math/rand functions; use an injected \*rand\.Rand`
}

func shuffleGlobal(values []int) {
	rand.Shuffle(len(values), func(i, j int) { // want `avoid the global math/rand functions; use an injected \*rand\.Rand`
		values[i], values[j] = values[j], values[i]
	})
}

func drawInjected(r *rand.Rand) int {
	return r.Intn(30) + 1
}

func newGenerator(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func readCrypto(buf []byte) {
	_, _ = cryptorand.Read(buf)
}

func shadowedName() {
	rand := fakeRand{}
	fmt.Println(rand.Intn(30))
}

type fakeRand struct{}

func (fakeRand) Intn(n int) int { return n }

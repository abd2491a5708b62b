package testutil

import (
	"fmt"
	"math/rand"
	"testing"

	"noteboard-backend/lib/telemetry"
)

// Setup initializes logging and telemetry for a package's tests.
func Setup(t testing.TB, name string) func() {
	return telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", name))
}

// RandomString generates a random lowercase string given the pseudo random source.
func RandomString(rndm *rand.Rand, length int) string {
	str := make([]rune, length)
	for i := range str {
		str[i] = 'a' + rune(rndm.Intn(26))
	}
	return string(str)
}

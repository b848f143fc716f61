package numcast_test

import (
	"fmt"

	"github.com/kivetran/sundry/numcast"
)

// ExampleTo converts a sensor reading between widths and shows the
// truncation-toward-zero rule for floats.
func ExampleTo() {
	reading := uint32(10)

	fmt.Println(numcast.To[int32](reading))
	fmt.Println(numcast.To[float32](reading))
	fmt.Println(numcast.To[int32](float32(10.6)))
	fmt.Println(numcast.To[int32](float32(-10.6)))
	// Output:
	// 10
	// 10
	// 10
	// -10
}

// ExampleInRange guards an index computed in a wider type before narrowing.
func ExampleInRange() {
	idx := int64(42)

	if numcast.InRange(0, idx, 127) {
		fmt.Println("safe:", numcast.To[int8](idx))
	}
	// Output:
	// safe: 42
}

package geometry_test

import (
	"fmt"

	"github.com/soypat/fracmath/geometry"
)

func ExampleAreaCircle() {
	a, err := geometry.AreaCircle(12.0)
	if err != nil {
		panic(err)
	}
	truncated, err := geometry.AreaCircle(12)
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	fmt.Println(truncated)
	// Output:
	// 452.3893421169302
	// 452
}

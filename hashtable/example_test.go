package hashtable_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campuspath/hashtable"
)

// ExampleTable shows the Put/Get/Remove cycle and the duplicate-key contract.
func ExampleTable() {
	walk := hashtable.New[string, float64](hashtable.StringHasher)

	_ = walk.Put("Memorial Union", 105.8)
	if err := walk.Put("Memorial Union", 1); errors.Is(err, hashtable.ErrDuplicateKey) {
		fmt.Println("already present")
	}

	v, _ := walk.Get("Memorial Union")
	fmt.Printf("%.1f\n", v)

	_, _ = walk.Remove("Memorial Union")
	_, err := walk.Get("Memorial Union")
	fmt.Println(errors.Is(err, hashtable.ErrKeyNotFound))

	// Output:
	// already present
	// 105.8
	// true
}

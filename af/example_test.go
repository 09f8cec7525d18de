package af_test

import (
	"fmt"

	"github.com/katalvlaran/afmend/af"
)

// ExampleFramework_Initialize shows the variable layout of a strict
// instance: attack variables first, then the attacked-through gadgets.
func ExampleFramework_Initialize() {
	f := af.New()
	_ = f.AddArgument("a")
	_ = f.AddArgument("b")
	_ = f.AddAttack("b", "a")
	_ = f.AddEnforcement("a")

	if err := f.Initialize(af.Strict, af.Stable, false); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("attVar(a,b):", f.AttVar(1, 2))
	fmt.Println("attVar(b,a):", f.AttVar(2, 1))
	fmt.Println("variables:", f.VarCount())

	// Output:
	// attVar(a,b): 1
	// attVar(b,a): 2
	// variables: 4
}

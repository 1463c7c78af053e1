package gopoly_test

import (
	"fmt"

	"github.com/njchilds90/gopoly"
)

func ExamplePolynomial_String() {
	p := gopoly.New(gopoly.T(-1, 1), gopoly.T(5, 0), gopoly.T(3, 2))
	fmt.Println(p.Normalize())
	fmt.Println(gopoly.New(gopoly.T(1, 0)))
	fmt.Println(gopoly.New(gopoly.T(1, 1)))
	fmt.Println(gopoly.Zero())
	// Output:
	// 3x² - x + 5
	// 1
	// x
	// 0
}

func ExamplePolynomial_Mul() {
	a := gopoly.New(gopoly.T(1, 1), gopoly.T(1, 0))
	b := gopoly.New(gopoly.T(1, 1), gopoly.T(-1, 0))
	fmt.Println(a.Mul(b))
	// Output: x² - 1
}

func ExamplePolynomial_Evaluate() {
	p := gopoly.New(gopoly.T(2, 2), gopoly.T(3, 1), gopoly.T(1, 0))
	fmt.Println(p.Evaluate(gopoly.N(2)))
	// Output: 15
}

func ExamplePolynomial_Degree() {
	for _, p := range []*gopoly.Polynomial{gopoly.Zero(), gopoly.New(gopoly.T(4, 0)), gopoly.New(gopoly.T(1, 3))} {
		deg, ok := p.Degree()
		fmt.Println(deg, ok)
	}
	// Output:
	// 0 false
	// 0 true
	// 3 true
}

package binviz_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-binviz"
)

// Example shows the string conversions.
func Example() {
	fmt.Println(binviz.DecimalToBinary(5))
	fmt.Println(binviz.DecimalToBinary(0))
	fmt.Println(binviz.BinaryToDecimal("1101"))
	fmt.Println(binviz.BinaryToDecimal("abc"))
	// Output:
	// 101
	// 0
	// 13
	// Invalid Binary
}

// ExampleDecimalToBinary_negative shows the 32-bit two's complement form.
func ExampleDecimalToBinary_negative() {
	fmt.Println(binviz.DecimalToBinary(-5))
	// Output: 11111111111111111111111111111011
}

// ExampleParseBinary reports why input was rejected.
func ExampleParseBinary() {
	_, err := binviz.ParseBinary("10a1")
	fmt.Println(err)
	// Output: invalid binary: binary digit must be 0 or 1: 'a' at offset 2
}

// ExampleExplain walks the positional weights of a binary string.
func ExampleExplain() {
	exp, err := binviz.Explain("101")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, card := range exp.Cards {
		fmt.Printf("%s x 2^%d = %d\n", card.Digit, card.Index, card.Contribution)
	}
	fmt.Println("total:", exp.Total)
	// Output:
	// 1 x 2^2 = 4
	// 0 x 2^1 = 0
	// 1 x 2^0 = 1
	// total: 5
}

// ExampleDivide traces the repeated division of a decimal by two.
func ExampleDivide() {
	trace, err := binviz.Divide(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range trace.Steps {
		fmt.Printf("%d / 2 = %d rem %d\n", s.Dividend, s.Quotient, s.Remainder)
	}
	fmt.Println(trace.Binary())
	// Output:
	// 6 / 2 = 3 rem 0
	// 3 / 2 = 1 rem 1
	// 1 / 2 = 0 rem 1
	// 110
}

// ExampleTextRenderer_Explanation lays out an explanation for a terminal.
func ExampleTextRenderer_Explanation() {
	exp, _ := binviz.Explain("101")
	fmt.Print(binviz.NewTextRenderer(80).Explanation(exp))
	// Output:
	// 101 to decimal
	//   1  2^2  +4
	//   0  2^1  +0 (off)
	//   1  2^0  +1
	//   = 5
}

// ExampleRenderExplanation renders the HTML fragment for a binary string.
func ExampleRenderExplanation() {
	fragment := binviz.RenderExplanation("10")
	fmt.Println(strings.Count(fragment, `class="card active"`), "active")
	fmt.Println(strings.Count(fragment, `class="card dim"`), "dim")
	// Output:
	// 1 active
	// 1 dim
}

// ExampleNewBuilder builds an HTML-only worksheet. PDF output needs Chrome.
func ExampleNewBuilder() {
	b, err := binviz.NewBuilder(binviz.WithStyle("chalkboard"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer b.Close()

	res, err := b.Build(context.Background(), binviz.Worksheet{
		Title:    "Practice",
		Binaries: []string{"1010"},
		Decimals: []int32{10},
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Contains(string(res.HTML), "1010 in base 2"))
	// Output: true
}

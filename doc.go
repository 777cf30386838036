// Package binviz converts integers to and from binary digit strings and
// renders step-by-step explanations of each conversion for learners.
//
// # Conversions
//
//	binviz.DecimalToBinary(5)      // "101"
//	binviz.BinaryToDecimal("101")  // "5"
//	binviz.BinaryToDecimal("abc")  // binviz.InvalidBinary
//
// BinaryToDecimal signals failure with the InvalidBinary string. ParseBinary
// returns a typed error instead:
//
//	n, err := binviz.ParseBinary(input)
//	if errors.Is(err, binviz.ErrBinaryOverflow) {
//	    // more than 31 significant bits
//	}
//
// # Explanations
//
// Two renderers turn a conversion into an HTML fragment for a host page:
//
//	binviz.RenderExplanation("101") // one card per bit, then "= 5"
//	binviz.RenderDecimalViz(5)      // 5 ÷ 2, 2 ÷ 2, 1 ÷ 2 with remainders
//
// Both are built on structured records a host can consume directly:
//
//	exp, _ := binviz.Explain("101")    // []BitCard, Total
//	trace, _ := binviz.Divide(5)       // []DivisionStep
//
// The class names stamped on fragments form a versioned Schema
// (SchemaVersion, "binviz/v1"). Every outer container carries a data-schema
// attribute so a host stylesheet can check which vocabulary it receives.
// Use NewRenderer with WithSchema to rename classes.
//
// TextRenderer lays out the same records for terminals.
//
// # Worksheets
//
// A Builder places fragments in a printable document with Markdown notes and
// an embedded stylesheet, then prints it to PDF with headless Chrome:
//
//	b, err := binviz.NewBuilder(binviz.WithStyle("chalkboard"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	res, err := b.Build(ctx, binviz.Worksheet{
//	    Title:    "Powers of two",
//	    Binaries: []string{"101", "1101"},
//	    Decimals: []int32{13},
//	})
//
// Set Worksheet.HTMLOnly to skip the browser. For containers and CI, set
// ROD_NO_SANDBOX=1; ROD_BROWSER_BIN selects a custom Chrome binary.
//
// # Negative values
//
// DecimalToBinary formats negative values as their 32-bit two's-complement
// pattern and RenderDecimalViz renders no division steps for them. The
// structured API rejects them: FormatBinary and Divide return
// ErrNegativeValue.
package binviz

package windowgram_test

import (
	"fmt"

	"github.com/matzehuels/windowgram/pkg/windowgram"
)

func ExampleParse() {
	w, err := windowgram.Parse(`
		# editor on the left, two shells on the right
		1112
		1113
	`)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%dx%d\n", w.Width(), w.Height())
	for _, p := range w.SortedPanes() {
		fmt.Println(p)
	}
	// Output:
	// 4x2
	// 1:3x2+1+1
	// 2:1x1+4+1
	// 3:1x1+4+2
}

func ExampleComposite() {
	base := windowgram.MustParse("12\n34")
	maskA, _ := windowgram.GenerateMask(base, "1")
	maskB, _ := windowgram.GenerateMask(base, "4")

	out, _ := windowgram.Composite(base, []windowgram.Layer{
		{Variant: base.Replace("1", '4'), Mask: maskA},
		{Variant: base.Replace("4", '1'), Mask: maskB},
	})
	fmt.Print(out)
	// Output:
	// 42
	// 31
}

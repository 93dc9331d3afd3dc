package intcomp_test

import (
	"bytes"
	"fmt"

	intcomp "github.com/apobekiaris/integer-compression"
)

func ExampleEncode() {
	b, err := intcomp.Encode(intcomp.VLQ{}, 0, 128)
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", b)
	// Output: 00 80 01
}

func ExampleNewSignedWriter() {
	buf := &bytes.Buffer{}
	u, err := intcomp.NewEliasGammaWriter(buf)
	if err != nil {
		panic(err)
	}
	w := intcomp.NewSignedWriter(u)
	for _, v := range []int64{0, -1, 1} {
		if err := w.Write(v); err != nil {
			panic(err)
		}
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	fmt.Printf("%08b\n", buf.Bytes())

	r, err := intcomp.NewEliasGammaReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		panic(err)
	}
	sr := intcomp.NewSignedReader(r)
	defer sr.Close()
	for i := 0; i < 3; i++ {
		v, err := sr.Read()
		if err != nil {
			panic(err)
		}
		fmt.Println(v)
	}
	// Output:
	// [10100110]
	// 0
	// -1
	// 1
}

func ExampleThompsonAlphaMaxValue() {
	for lengthBits := 1; lengthBits <= 3; lengthBits++ {
		limit, _ := intcomp.ThompsonAlphaMaxValue(lengthBits)
		fmt.Println(lengthBits, limit)
	}
	// Output:
	// 1 2
	// 2 14
	// 3 254
}

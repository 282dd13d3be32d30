package telea

import (
	"fmt"
	"testing"
)

func benchmarkInpaint(b *testing.B, h, w, c, radius int) {
	src := makeImage(h, w, c, func(y, x, ch int) float32 {
		return float32((y*31+x*17+ch*7)%251) / 250
	})
	mask := maskWithBlock(h, w, h/3, w/3, 2*h/3, 2*w/3)
	data := cloneData(src)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(src.Data(), data)
		b.StartTimer()
		if err := Inpaint(src, mask, radius); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInpaint(b *testing.B) {
	cases := []struct {
		h, w, c, radius int
	}{
		{128, 128, 3, 3},
		{512, 512, 3, 3},
		{512, 512, 3, 9},
		{480, 854, 4, 5},
	}
	for _, tc := range cases {
		name := fmt.Sprintf("%dx%dx%d/r%d", tc.h, tc.w, tc.c, tc.radius)
		b.Run(name, func(b *testing.B) {
			benchmarkInpaint(b, tc.h, tc.w, tc.c, tc.radius)
		})
	}
}

func BenchmarkFieldInit(b *testing.B) {
	mask := maskWithBlock(1080, 1920, 300, 500, 700, 1300)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		newField(mask)
	}
}

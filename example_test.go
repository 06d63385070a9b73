package maimaidx_test

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	maimaidx "github.com/SherkeyXD/nonebot-plugin-maimaidx"
	"github.com/SherkeyXD/nonebot-plugin-maimaidx/text"
)

func ExampleDrawGradient() {
	img, err := maimaidx.DrawGradient(4, 2,
		color.NRGBA{}, color.NRGBA{R: 255, G: 255, B: 255},
		[3]bool{true, true, true},
	)
	if err != nil {
		log.Fatal(err)
	}
	for x := 0; x < 4; x++ {
		fmt.Println(img.NRGBAAt(x, 1))
	}
	// Output:
	// {0 0 0 255}
	// {85 85 85 255}
	// {170 170 170 255}
	// {255 255 255 255}
}

func ExampleToBase64() {
	img, err := maimaidx.DefaultGradient().Fill(8, 8)
	if err != nil {
		log.Fatal(err)
	}
	s, err := maimaidx.ToBase64(img, maimaidx.PNG)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.HasPrefix(s, maimaidx.Base64Prefix))
	// Output: true
}

func ExampleLabelBuilder_Build() {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	lb, err := maimaidx.NewLabelBuilder("", maimaidx.WithFontSource(src))
	if err != nil {
		log.Fatal(err)
	}
	one, err := lb.Build("Score")
	if err != nil {
		log.Fatal(err)
	}
	two, err := lb.Build("Score\nScore")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(one.Bounds().Dx() == two.Bounds().Dx(), two.Bounds().Dy() > one.Bounds().Dy())
	// Output: true true
}

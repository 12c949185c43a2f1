package examples

import (
	"fmt"

	"beautty"
)

func buildHello(d *Demo, b *beautty.Builder) {
	d.box(b, "greeting", beautty.Style{}.Column().Border(true).BorderRadius(true).
		Padding(1, 4).Foreground(beautty.Cyan).Header("beautty"), func() {
		d.text(b, "title", "Hello, World!", plain.Bold().Foreground(beautty.BrightWhite))
		d.text(b, "hint", "Press q to quit", plain.Dim())
	})
}

func buildFlexbox(d *Demo, b *beautty.Builder) {
	bar := beautty.Style{}.Height(beautty.Cells(3)).Background(beautty.Blue).Border(true)

	d.box(b, "header", bar, func() {
		d.text(b, "header.text", "Flexbox Demo", plain.Foreground(beautty.White).Bold())
	})

	d.box(b, "main", beautty.Style{}.Row().Grow(1), func() {
		d.box(b, "sidebar", beautty.Style{}.Width(beautty.Cells(20)).Background(beautty.Cyan).
			Border(true).Padding(1).Header("Menu"), func() {
			d.text(b, "sidebar.title", "Sidebar", plain.Foreground(beautty.Black).Bold())
			for i := 1; i <= 3; i++ {
				d.text(b, "sidebar.item", fmt.Sprintf("Menu Item %d", i), plain.Foreground(beautty.Black))
			}
		})

		d.box(b, "content", beautty.Style{}.Column().Grow(1).Border(true).Padding(1, 2).
			Background(beautty.White), func() {
			ink := plain.Foreground(beautty.Black)
			d.text(b, "content.title", "Main Content Area", ink.Bold())
			d.text(b, "content.text", "This is a demonstration of the flexbox-like layout system.", ink)
			d.text(b, "content.text", "Try resizing the terminal to see how the layout adapts!", ink)

			colors := []beautty.Color{beautty.Red, beautty.Green, beautty.Blue, beautty.Magenta, beautty.Yellow}
			d.box(b, "growrow", plain.Row().Height(beautty.Cells(5)).Margin(2, 0, 0, 0), func() {
				for i, c := range colors {
					d.box(b, "growbox", beautty.Style{}.Grow(float64(i+1)).Background(c).Border(true), func() {
						d.text(b, "growbox.text", fmt.Sprintf("flex: %d", i+1),
							plain.Foreground(beautty.White).Bold())
					})
				}
			})
		})
	})

	d.box(b, "footer", bar, func() {
		d.text(b, "footer.text", "Press 'q' to quit", plain.Foreground(beautty.White))
	})
}

func buildJustify(d *Demo, b *beautty.Builder) {
	modes := []beautty.Justify{
		beautty.JustifyFlexStart, beautty.JustifyFlexEnd, beautty.JustifyCenter,
		beautty.JustifySpaceBetween, beautty.JustifySpaceAround, beautty.JustifySpaceEvenly,
	}
	item := beautty.Style{}.Width(beautty.Cells(10)).Height(beautty.Auto()).Border(true).Background(beautty.Blue)
	for _, j := range modes {
		d.box(b, "lane", beautty.Style{}.Row().Justify(j).Border(true).
			BorderVariant(beautty.VariantDouble).Header(j.String()).Height(beautty.Cells(5)), func() {
			for i := 1; i <= 3; i++ {
				d.box(b, "lane.item", item, func() {
					d.text(b, "lane.text", fmt.Sprintf("#%d", i), plain.Bold())
				})
			}
		})
	}

	aligns := []beautty.Align{beautty.AlignStretch, beautty.AlignFlexStart, beautty.AlignCenter, beautty.AlignFlexEnd}
	d.box(b, "aligns", beautty.Style{}.Row().Grow(1), func() {
		for _, a := range aligns {
			d.box(b, "align", beautty.Style{}.Column().Align(a).Grow(1).Border(true).
				BorderThickness(2).Header(a.String()), func() {
				d.text(b, "align.text", "short", plain.Background(beautty.Magenta))
				d.text(b, "align.text", "a longer line", plain.Background(beautty.Green))
			})
		}
	})
}

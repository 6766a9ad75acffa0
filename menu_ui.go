package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Menu is the centered overlay shown while paused and after a level is won.
type Menu struct {
	ui     *ebitenui.UI
	title  *widget.Text
	resume *widget.Button
}

// NewMenu builds the overlay with Resume, Restart and Next Level buttons.
// Buttons use colored nine-slices and the built-in basic font, so no theme
// assets are needed.
func NewMenu(g *Game, width, height int) *Menu {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	resume := newButton("Resume", g.resume)
	panel.AddChild(title)
	panel.AddChild(resume)
	panel.AddChild(newButton("Restart", g.restart))
	panel.AddChild(newButton("Next Level", g.nextLevel))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &Menu{
		ui:     &ebitenui.UI{Container: root},
		title:  title,
		resume: resume,
	}
}

func (m *Menu) SetTitle(label string) {
	if m.title.Label != label {
		m.title.Label = label
	}
}

// SetResumeVisible shows Resume while paused; a won level has nothing to resume.
func (m *Menu) SetResumeVisible(visible bool) {
	if visible {
		m.resume.GetWidget().Visibility = widget.Visibility_Show
	} else {
		m.resume.GetWidget().Visibility = widget.Visibility_Hide
	}
}

package timerwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// tapCatcher is an invisible layer that reports clicks outside the buttons.
type tapCatcher struct {
	widget.BaseWidget
	onTap func()
}

func newTapCatcher(onTap func()) *tapCatcher {
	catcher := &tapCatcher{onTap: onTap}
	catcher.ExtendBaseWidget(catcher)
	return catcher
}

func (catcher *tapCatcher) Tapped(*fyne.PointEvent) {
	if catcher.onTap != nil {
		catcher.onTap()
	}
}

func (catcher *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

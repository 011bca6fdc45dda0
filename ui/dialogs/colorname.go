// Package dialogs provides application dialogs.
package dialogs

import (
	"errors"

	"chart-tracer/pkg/rgb"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ColorNameDialog asks the user to name a color segmentation stopped on.
// Segmentation stays suspended until the dialog is confirmed; there is no
// cancel, because an unnamed color cannot be walked.
type ColorNameDialog struct {
	color  rgb.RGB
	window fyne.Window

	fullNameEntry *widget.Entry
	oneCharEntry  *widget.Entry

	onName func(fullName, oneChar string)
}

// NewColorNameDialog creates a dialog for the given color. onName is called
// with the entered labels when the user confirms.
func NewColorNameDialog(c rgb.RGB, window fyne.Window, onName func(fullName, oneChar string)) *ColorNameDialog {
	return &ColorNameDialog{
		color:  c,
		window: window,
		onName: onName,
	}
}

// Show displays the dialog.
func (d *ColorNameDialog) Show() {
	swatch := fynecanvas.NewRectangle(d.color.NRGBA())
	swatch.SetMinSize(fyne.NewSize(64, 64))

	d.fullNameEntry = widget.NewEntry()
	d.fullNameEntry.SetPlaceHolder("e.g., Cherry Red")
	d.fullNameEntry.Validator = func(s string) error {
		if s == "" {
			return errors.New("name required")
		}
		return nil
	}

	d.oneCharEntry = widget.NewEntry()
	d.oneCharEntry.SetPlaceHolder("e.g., R")
	d.oneCharEntry.Validator = func(s string) error {
		if len([]rune(s)) != 1 {
			return errors.New("exactly one character")
		}
		return nil
	}

	form := widget.NewForm(
		widget.NewFormItem("Full name", d.fullNameEntry),
		widget.NewFormItem("Short code", d.oneCharEntry),
	)

	content := container.NewVBox(
		container.NewCenter(swatch),
		widget.NewLabel("New color "+d.color.Hex()),
		form,
	)

	dlg := dialog.NewCustomWithoutButtons("Name This Color", content, d.window)

	okBtn := widget.NewButton("OK", func() {
		if d.fullNameEntry.Validate() != nil || d.oneCharEntry.Validate() != nil {
			return
		}
		dlg.Hide()
		if d.onName != nil {
			d.onName(d.fullNameEntry.Text, d.oneCharEntry.Text)
		}
	})
	okBtn.Importance = widget.HighImportance

	buttons := container.NewHBox(okBtn)
	fullContent := container.NewBorder(nil, container.NewCenter(buttons), nil, nil, content)

	dlg = dialog.NewCustomWithoutButtons("Name This Color", fullContent, d.window)
	dlg.Resize(fyne.NewSize(360, 320))
	dlg.Show()
	d.window.Canvas().Focus(d.fullNameEntry)
}

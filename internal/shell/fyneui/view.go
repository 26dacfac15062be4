// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package fyneui

import (
	"encoding/json"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// call invokes a bridge command by name.
type call func(name string, args json.RawMessage) (string, error)

// frontendView is the greeting form shown in the main window.
type frontendView struct {
	content fyne.CanvasObject
	name    *widget.Entry
	greet   *widget.Button
	result  *widget.Label
}

// newFrontendView builds the greeting form. Pressing Enter in the name field
// or clicking Greet invokes the greet command through invoke and shows its
// result, or the error text, below the form.
func newFrontendView(appName string, invoke call, log logrus.FieldLogger) *frontendView {
	v := &frontendView{
		name:   widget.NewEntry(),
		result: widget.NewLabel(""),
	}
	v.name.SetPlaceHolder("Enter a name...")

	v.greet = widget.NewButton("Greet", func() {
		args, err := json.Marshal(map[string]string{"name": v.name.Text})
		if err != nil {
			log.WithError(err).Error("Failed to encode greet arguments")
			return
		}

		out, err := invoke("greet", args)
		if err != nil {
			log.WithError(err).Warn("greet failed")
			v.result.SetText(err.Error())
			return
		}
		v.result.SetText(out)
	})
	v.name.OnSubmitted = func(string) { v.greet.OnTapped() }

	v.content = container.NewVBox(
		widget.NewLabelWithStyle("Welcome to "+appName+"!", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, v.greet, v.name),
		v.result,
	)
	return v
}

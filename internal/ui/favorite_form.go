package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/orbitmarks/orbit/internal/model"
)

// FavoriteForm is the add/edit dialog for a favorite
type FavoriteForm struct {
	window fyne.Window

	nameEntry      *widget.Entry
	urlEntry       *widget.Entry
	kindSelect     *widget.Select
	imageEntry     *widget.Entry
	glyphEntry     *widget.Entry
	behaviorSelect *widget.Select
}

// NewFavoriteForm creates the form bound to the given window
func NewFavoriteForm(window fyne.Window) *FavoriteForm {
	f := &FavoriteForm{window: window}
	f.createUI()
	return f
}

// createUI builds the form widgets
func (f *FavoriteForm) createUI() {
	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetPlaceHolder("Name")

	f.urlEntry = widget.NewEntry()
	f.urlEntry.SetPlaceHolder("https://...")

	kindOptions := make([]string, 0, len(model.Kinds()))
	for _, kind := range model.Kinds() {
		kindOptions = append(kindOptions, string(kind))
	}
	f.kindSelect = widget.NewSelect(kindOptions, nil)

	f.imageEntry = widget.NewEntry()
	f.imageEntry.SetPlaceHolder("Image URL (optional)")

	f.glyphEntry = widget.NewEntry()
	f.glyphEntry.SetPlaceHolder("Short text, 1-4 characters")

	f.behaviorSelect = widget.NewSelect([]string{
		string(model.OpenNewTab),
		string(model.OpenModal),
	}, nil)
	f.behaviorSelect.PlaceHolder = "Open behavior"
}

// ShowAdd opens the form empty and calls onSubmit with a validated favorite
func (f *FavoriteForm) ShowAdd(onSubmit func(model.Favorite)) {
	f.load(model.Favorite{Type: model.KindPage})
	f.show("Add Favorite", model.Favorite{}, onSubmit)
}

// ShowEdit opens the form prefilled from an existing favorite
func (f *FavoriteForm) ShowEdit(fav model.Favorite, onSubmit func(model.Favorite)) {
	f.load(fav)
	f.show("Edit Favorite", fav, onSubmit)
}

func (f *FavoriteForm) load(fav model.Favorite) {
	f.nameEntry.SetText(fav.Name)
	f.urlEntry.SetText(fav.URL)
	f.kindSelect.SetSelected(string(fav.Type))
	f.imageEntry.SetText(fav.ImageURL)
	f.glyphEntry.SetText(fav.DisplayText)
	f.behaviorSelect.SetSelected(string(fav.EffectiveOpenBehavior()))
}

func (f *FavoriteForm) show(title string, base model.Favorite, onSubmit func(model.Favorite)) {
	form := container.NewVBox(
		widget.NewLabel("Name:"),
		f.nameEntry,
		widget.NewLabel("URL:"),
		f.urlEntry,
		widget.NewLabel("Kind:"),
		f.kindSelect,
		widget.NewSeparator(),
		widget.NewLabel("Image URL or display text (one of the two):"),
		f.imageEntry,
		f.glyphEntry,
		widget.NewLabel("Open behavior:"),
		f.behaviorSelect,
	)

	d := dialog.NewCustomConfirm(title, "Save", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}
		fav := f.collect(base)
		if err := fav.Validate(); err != nil {
			dialog.ShowError(err, f.window)
			return
		}
		onSubmit(fav)
	}, f.window)
	d.Resize(fyne.NewSize(460, 440))
	d.Show()
}

// collect builds the favorite from the current widget state, keeping the id
// of the favorite being edited
func (f *FavoriteForm) collect(base model.Favorite) model.Favorite {
	fav := base
	fav.Name = f.nameEntry.Text
	fav.URL = f.urlEntry.Text
	fav.Type = model.Kind(f.kindSelect.Selected)
	fav.ImageURL = f.imageEntry.Text
	fav.DisplayText = f.glyphEntry.Text
	fav.OpenBehavior = model.OpenBehavior(f.behaviorSelect.Selected)
	if fav.OpenBehavior == model.OpenNewTab {
		fav.OpenBehavior = ""
	}
	return fav
}

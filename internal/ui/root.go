package ui

import (
	"fmt"
	"io"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/orbitmarks/orbit/internal/board"
	"github.com/orbitmarks/orbit/internal/config"
	"github.com/orbitmarks/orbit/internal/export"
	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/logger"
	"github.com/orbitmarks/orbit/internal/model"
	"github.com/orbitmarks/orbit/internal/platform"
	"github.com/orbitmarks/orbit/internal/storage"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	svc      *board.Service
	snapSvc  *export.Service
	settings *config.Settings
	log      logger.Logger

	boardCanvas  *BoardCanvas
	searchEntry  *widget.Entry
	favoriteForm *FavoriteForm
	opener       *Opener
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc *board.Service, snapSvc *export.Service, log logger.Logger) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:   window,
		svc:      svc,
		snapSvc:  snapSvc,
		settings: settings,
		log:      log,
	}

	window.SetTitle("Orbit")

	ui.opener = NewOpener(ui.openExternal, ui.openModal)
	ui.favoriteForm = NewFavoriteForm(window)

	ui.boardCanvas = NewBoardCanvas(svc, settings.GetOrbitRadius(), log)
	ui.boardCanvas.RestoreView(settings.GetViewTransform())

	svc.SetUpdateCallback(ui.onBoardUpdate)
	snapSvc.SetCompleteCallback(ui.onSnapshotDone)

	ui.setupUI()
	return ui
}

// PersistView stores the current view transform, called on shutdown
func (ui *RootUI) PersistView() {
	ui.settings.SetViewTransform(ui.boardCanvas.ViewTransform())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder("Search favorites and groups")
	ui.searchEntry.OnChanged = func(string) { ui.applySearch() }

	addGroupBtn := widget.NewButton("Add Group", ui.onAddGroup)

	settingsBtn := widget.NewButton("Settings", ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, addGroupBtn, ui.searchEntry)

	ui.boardCanvas.OnFavoriteTapped = ui.onFavoriteTapped
	ui.boardCanvas.OnFavoriteMenu = ui.onFavoriteMenu
	ui.boardCanvas.OnGroupMenu = ui.onGroupMenu
	ui.boardCanvas.OnBackgroundMenu = ui.onBackgroundMenu
	ui.boardCanvas.OnError = ui.showError

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		ui.boardCanvas,
	)

	ui.window.SetContent(content)
	ui.applySearch()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	importItem := fyne.NewMenuItem("Import Board...", ui.onImport)
	exportItem := fyne.NewMenuItem("Export Board...", ui.onExport)
	snapshotItem := fyne.NewMenuItem("Save Snapshot...", ui.onSnapshot)
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", importItem, exportItem, snapshotItem, fyne.NewMenuItemSeparator(), settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onBoardUpdate handles board updates from the board service
func (ui *RootUI) onBoardUpdate(b model.Board) {
	fyne.Do(func() {
		ui.boardCanvas.SetBoard(b)
		ui.applySearch()
	})
}

// applySearch recomputes the match sets for the current query
func (ui *RootUI) applySearch() {
	matches := board.Search(ui.svc.Snapshot(), ui.searchEntry.Text)
	ui.boardCanvas.SetMatches(matches)
}

// onAddGroup prompts for a name and places a group at the view center
func (ui *RootUI) onAddGroup() {
	size := ui.boardCanvas.Size()
	center := fyne.NewPos(size.Width/2, size.Height/2)
	ui.promptAddGroup(ui.boardCanvas.ScreenToWorld(center))
}

func (ui *RootUI) promptAddGroup(anchor geometry.Point) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Group name")

	dialog.ShowCustomConfirm("Add Group", "Add", "Cancel", entry, func(confirmed bool) {
		if !confirmed {
			return
		}
		if _, err := ui.svc.AddGroup(entry.Text, anchor); err != nil {
			ui.showError(err)
		}
	}, ui.window)
}

// onFavoriteTapped opens a favorite through the dispatch table
func (ui *RootUI) onFavoriteTapped(fav model.Favorite) {
	if err := ui.opener.Open(fav); err != nil {
		ui.showError(err)
	}
}

// openExternal opens the favorite's URL with the system handler
func (ui *RootUI) openExternal(fav model.Favorite) error {
	ui.log.Info("opening favorite",
		logger.String("id", fav.ID),
		logger.String("kind", fav.Type.String()))
	return platform.OpenURL(fav.URL)
}

// openModal shows a page favorite inside the app instead of leaving it
func (ui *RootUI) openModal(fav model.Favorite) error {
	target, err := url.Parse(fav.URL)
	if err != nil {
		return fmt.Errorf("parse favorite url: %w", err)
	}

	link := widget.NewHyperlink(fav.URL, target)
	content := container.NewVBox(
		widget.NewLabel(fav.Name),
		widget.NewSeparator(),
		link,
	)
	dialog.ShowCustom(fav.Name, "Close", content, ui.window)
	return nil
}

// onFavoriteMenu shows the context menu for a planet
func (ui *RootUI) onFavoriteMenu(fav model.Favorite, groupID string, abs fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Open", func() { ui.onFavoriteTapped(fav) }),
		fyne.NewMenuItem("Copy URL", func() { ui.onCopyURL(fav) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Edit...", func() { ui.onEditFavorite(fav) }),
		fyne.NewMenuItem("Remove", func() { ui.onRemoveFavorite(fav) }),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), abs)
}

// onGroupMenu shows the context menu for a sun
func (ui *RootUI) onGroupMenu(group model.Group, abs fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Add Favorite...", func() { ui.onAddFavorite(group.ID) }),
		fyne.NewMenuItem("Rename...", func() { ui.onRenameGroup(group) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Remove", func() { ui.onRemoveGroup(group) }),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), abs)
}

// onBackgroundMenu shows the context menu for empty space
func (ui *RootUI) onBackgroundMenu(world geometry.Point, abs fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Add Group Here...", func() { ui.promptAddGroup(world) }),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), abs)
}

// onCopyURL copies the favorite's URL to the system clipboard
func (ui *RootUI) onCopyURL(fav model.Favorite) {
	if err := platform.CopyText(fav.URL); err != nil {
		ui.showError(err)
		return
	}
	widget.ShowPopUp(widget.NewLabel("URL copied to clipboard"), ui.window.Canvas())
}

// onAddFavorite opens the add form for a group
func (ui *RootUI) onAddFavorite(groupID string) {
	ui.favoriteForm.ShowAdd(func(fav model.Favorite) {
		if _, err := ui.svc.AddFavorite(groupID, fav); err != nil {
			ui.showError(err)
		}
	})
}

// onEditFavorite opens the edit form prefilled with the favorite
func (ui *RootUI) onEditFavorite(fav model.Favorite) {
	ui.favoriteForm.ShowEdit(fav, func(edited model.Favorite) {
		if err := ui.svc.EditFavorite(fav.ID, edited); err != nil {
			ui.showError(err)
		}
	})
}

// onRemoveFavorite removes a favorite after confirmation
func (ui *RootUI) onRemoveFavorite(fav model.Favorite) {
	dialog.ShowConfirm("Remove Favorite",
		fmt.Sprintf("Remove %q from the board?", fav.Name),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.svc.RemoveFavorite(fav.ID); err != nil {
				ui.showError(err)
			}
		}, ui.window)
}

// onRenameGroup prompts for a new group name
func (ui *RootUI) onRenameGroup(group model.Group) {
	entry := widget.NewEntry()
	entry.SetText(group.Name)

	dialog.ShowCustomConfirm("Rename Group", "Rename", "Cancel", entry, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := ui.svc.RenameGroup(group.ID, entry.Text); err != nil {
			ui.showError(err)
		}
	}, ui.window)
}

// onRemoveGroup removes a group and everything orbiting it
func (ui *RootUI) onRemoveGroup(group model.Group) {
	message := fmt.Sprintf("Remove group %q?", group.Name)
	if n := len(group.Favorites); n > 0 {
		message = fmt.Sprintf("Remove group %q and its %d favorites?", group.Name, n)
	}

	dialog.ShowConfirm("Remove Group", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := ui.svc.RemoveGroup(group.ID); err != nil {
			ui.showError(err)
		}
	}, ui.window)
}

// onImport loads a board file, previews it, and replaces the board
func (ui *RootUI) onImport() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			ui.showError(fmt.Errorf("read import file: %w", err))
			return
		}

		imported, err := storage.ParseImport(data)
		if err != nil {
			ui.showError(fmt.Errorf("import rejected: %w", err))
			return
		}

		message := fmt.Sprintf("Replace the current board with %d groups and %d favorites?",
			len(imported.Groups), imported.TotalFavorites())
		dialog.ShowConfirm("Import Board", message, func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.svc.Replace(imported); err != nil {
				ui.showError(err)
			}
		}, ui.window)
	}, ui.window)
}

// onExport writes the board as pretty JSON to a chosen file
func (ui *RootUI) onExport() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		data, err := storage.ExportJSON(ui.svc.Snapshot())
		if err != nil {
			ui.showError(err)
			return
		}
		if _, err := writer.Write(data); err != nil {
			ui.showError(fmt.Errorf("write export: %w", err))
			return
		}
		widget.ShowPopUp(widget.NewLabel("Board exported"), ui.window.Canvas())
	}, ui.window)
}

// onSnapshot renders the board to a PNG in the background
func (ui *RootUI) onSnapshot() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		ui.snapSvc.Snapshot(ui.svc.Snapshot(), ui.settings.GetOrbitRadius(), path)
	}, ui.window)
}

// onSnapshotDone reports the outcome of a background snapshot
func (ui *RootUI) onSnapshotDone(res export.Result) {
	fyne.Do(func() {
		if res.Err != nil {
			ui.showError(res.Err)
			return
		}
		widget.ShowPopUp(widget.NewLabel("Snapshot saved: "+res.Path), ui.window.Canvas())
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, func() {
		ui.boardCanvas.SetRadius(ui.settings.GetOrbitRadius())
	}).Show()
}

func (ui *RootUI) showError(err error) {
	ui.log.Warn("ui error", logger.Error(err))
	dialog.ShowError(err, ui.window)
}

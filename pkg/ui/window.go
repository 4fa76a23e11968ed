// Package ui hosts the gamma charts in a fyne window, one tab per gamma.
package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"

	"gammachart/pkg/chart"
	"gammachart/pkg/config"
	"gammachart/pkg/logging"
)

var errNoImage = errors.New("chart has no image")

// QuitShortcuts close the application from anywhere in the window.
var QuitShortcuts = []*desktop.CustomShortcut{
	{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl},
	{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierSuper},
}

// MainWindow is the application window. It owns the charts and their canvas
// images for its whole lifetime.
type MainWindow struct {
	app    fyne.App
	window fyne.Window
	tabs   *container.AppTabs
	charts []*chart.Chart
	images []*canvas.Image

	// quit is called by the menu item and the shortcuts.
	quit func()
}

// Build generates the charts for every configured gamma and returns the
// window hosting them.
func Build(a fyne.App, cfg *config.Config) (*MainWindow, error) {
	charts, err := chart.NewBuilder(cfg.TileSize).BuildAll(cfg.Gammas)
	if err != nil {
		return nil, err
	}
	return NewMainWindow(a, cfg, charts), nil
}

// NewMainWindow lays out the given charts as tabs in a new window.
func NewMainWindow(a fyne.App, cfg *config.Config, charts []*chart.Chart) *MainWindow {
	m := &MainWindow{
		app:    a,
		window: a.NewWindow(cfg.Title),
		charts: charts,
	}
	m.quit = a.Quit

	items := make([]*container.TabItem, 0, len(charts))
	for _, c := range charts {
		items = append(items, container.NewTabItem(c.Label(), m.chartView(c)))
	}
	m.tabs = container.NewAppTabs(items...)
	m.tabs.SetTabLocation(container.TabLocationTop)
	m.tabs.OnSelected = func(ti *container.TabItem) {
		logging.Debugf("selected tab %q", ti.Text)
	}

	pad := cfg.Padding
	m.window.SetContent(container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), m.tabs))
	m.buildMenus()
	m.window.SetMaster()
	m.window.Resize(m.window.Content().MinSize())
	m.window.CenterOnScreen()
	return m
}

// chartView shows a chart at its pixel size, centered in the tab.
func (m *MainWindow) chartView(c *chart.Chart) fyne.CanvasObject {
	img := c.Image()
	if img == nil {
		fyne.LogError("gamma "+c.Label(), errNoImage)
		return container.NewCenter()
	}
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillOriginal
	ci.ScaleMode = canvas.ImageScalePixels
	side := float32(img.Bounds().Dx())
	ci.SetMinSize(fyne.NewSize(side, float32(img.Bounds().Dy())))
	m.images = append(m.images, ci)
	return container.NewCenter(ci)
}

func (m *MainWindow) buildMenus() {
	quitItem := fyne.NewMenuItem("Quit", m.Quit)
	quitItem.IsQuit = true
	quitItem.Shortcut = QuitShortcuts[0]
	m.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", quitItem)))

	canv := m.window.Canvas()
	if canv != nil {
		for _, sc := range QuitShortcuts {
			canv.AddShortcut(sc, func(fyne.Shortcut) { m.Quit() })
		}
	}
}

// Quit ends the event loop.
func (m *MainWindow) Quit() {
	logging.Debugf("quit requested")
	m.quit()
}

// ShowAndRun shows the window and blocks until the application quits.
func (m *MainWindow) ShowAndRun() {
	m.window.ShowAndRun()
}

func (m *MainWindow) Window() fyne.Window          { return m.window }
func (m *MainWindow) Tabs() *container.AppTabs     { return m.tabs }
func (m *MainWindow) Charts() []*chart.Chart       { return m.charts }
func (m *MainWindow) ChartImages() []*canvas.Image { return m.images }

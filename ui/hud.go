package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/presentation"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws the health bar, the item counts and the game over panel from a
// presentation.View.
type HUD struct {
	View *presentation.View

	gameplay *ebitenui.UI
	gameOver *ebitenui.UI

	vialLabel   *widget.Label
	shieldLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewHUD builds both panels for view.
func NewHUD(view *presentation.View) (*HUD, error) {
	h := &HUD{View: view}
	if err := h.loadFonts(); err != nil {
		return nil, err
	}
	h.buildGameplayUI()
	h.buildGameOverUI()
	return h, nil
}

func (h *HUD) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load HUD font: %w", err)
	}
	h.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	h.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	h.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (h *HUD) buildGameplayUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Item counts sit under the health bar
	padding := widget.Insets{
		Top:  int(cfg.HUD.BarY + cfg.HUD.BarHeight + 4),
		Left: int(cfg.HUD.BarX),
	}
	counts := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.vialLabel = widget.NewLabel(
		widget.LabelOpts.Text(vialText(0), &h.normalFace, &widget.LabelColor{Idle: cfg.LightRed}),
	)
	h.shieldLabel = widget.NewLabel(
		widget.LabelOpts.Text(shieldText(0), &h.normalFace, &widget.LabelColor{Idle: cfg.Gold}),
	)
	counts.AddChild(h.vialLabel)
	counts.AddChild(h.shieldLabel)
	root.AddChild(counts)

	h.gameplay = &ebitenui.UI{Container: root}
}

func (h *HUD) buildGameOverUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Title, &h.titleFace, &widget.LabelColor{Idle: cfg.GameOver.TitleColor}),
	))
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Hint, &h.smallFace, &widget.LabelColor{Idle: cfg.GameOver.HintColor}),
	))
	root.AddChild(content)

	h.gameOver = &ebitenui.UI{Container: root}
}

func vialText(n int) string {
	return fmt.Sprintf("Vials: %d", n)
}

func shieldText(n int) string {
	return fmt.Sprintf("Shields: %d", n)
}

// Update refreshes labels from the view and updates the visible panel.
func (h *HUD) Update() {
	h.vialLabel.Label = vialText(h.View.Vials)
	h.shieldLabel.Label = shieldText(h.View.Shields)

	if h.View.GameOverVisible {
		h.gameOver.Update()
		return
	}
	if h.View.GameplayUIVisible {
		h.gameplay.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h.View.GameplayUIVisible {
		h.drawHealthBar(screen)
		h.gameplay.Draw(screen)
	}
	if h.View.GameOverVisible {
		h.gameOver.Draw(screen)
	}
}

func (h *HUD) drawHealthBar(screen *ebiten.Image) {
	x, y := float32(cfg.HUD.BarX), float32(cfg.HUD.BarY)
	w, ht := float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight)

	vector.DrawFilledRect(screen, x, y, w, ht, cfg.HUD.BarBackground, false)
	if fill := float32(h.View.HealthFill()); fill > 0 {
		vector.DrawFilledRect(screen, x, y, w*fill, ht, cfg.HUD.BarFill, false)
	}
	vector.StrokeRect(screen, x, y, w, ht, 1, cfg.White, false)
}

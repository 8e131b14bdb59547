package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/joho/godotenv"
	"github.com/temidaradev/esset/v2"

	"marketdash/internal"
)

//go:embed font.ttf
var MyFont []byte

const glyphsToPreload = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,:%$&^-/?()⌘⊞∞↑▲▼ "

const (
	baseFontSize  = 13
	titleFontSize = 16
	priceFontSize = 22
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := internal.LoadConfig()

	if err := internal.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("Logger could not be initialized: %v", err)
	}
	defer internal.Logger.Sync()

	// The one fetch of the session. Closing the window before it
	// settles cancels the request and the result is discarded.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan internal.FetchResult, 1)
	go func() {
		snap, err := internal.FetchSnapshot(ctx, cfg.MarketDataURL)
		results <- internal.FetchResult{Snapshot: snap, Err: err}
	}()
	internal.Logger.Infow("fetching market data", "url", cfg.MarketDataURL)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Market Dashboard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	deviceScale := ebiten.Monitor().DeviceScaleFactor()

	fontFace, err := loadFace(baseFontSize * deviceScale)
	if err != nil {
		log.Fatalf("Font could not be loaded: %v", err)
	}
	titleFace, err := loadFace(titleFontSize * deviceScale)
	if err != nil {
		log.Fatalf("Font could not be loaded: %v", err)
	}
	priceFace, err := loadFace(priceFontSize * deviceScale)
	if err != nil {
		log.Fatalf("Font could not be loaded: %v", err)
	}

	fmt.Println("Glyph caching...")
	tempImage := ebiten.NewImage(1, 1)
	for _, face := range []text.Face{fontFace, titleFace, priceFace} {
		text.Draw(tempImage, glyphsToPreload, face, &text.DrawOptions{})
	}
	fmt.Println("Glyph caching done.")

	g := internal.NewDashboard(results, fontFace, titleFace, priceFace, deviceScale)

	if err := ebiten.RunGame(g); err != nil {
		internal.Logger.Fatalw("dashboard terminated", "error", err)
	}
}

func loadFace(size float64) (text.Face, error) {
	return esset.GetFont(MyFont, int(size))
}

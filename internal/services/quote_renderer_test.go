package services

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtwork(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 0x99, G: 0xca, B: 0x3c, A: 0xff})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, name)))
}

func TestNewQuoteRenderer_LoadsAndShrinksArtwork(t *testing.T) {
	dir := t.TempDir()
	writeArtwork(t, dir, "logo.png", 960, 240)
	writeArtwork(t, dir, "dots.png", 50, 50)

	r, err := NewQuoteRenderer(dir)

	require.NoError(t, err)
	assert.Len(t, r.assets, 2)
	assert.NotContains(t, r.assets, "panels.png")

	logo, err := imaging.Decode(bytes.NewReader(r.assets["logo.png"]))
	require.NoError(t, err)
	assert.Equal(t, 480, logo.Bounds().Dx())
	assert.Equal(t, 120, logo.Bounds().Dy())

	dots, err := imaging.Decode(bytes.NewReader(r.assets["dots.png"]))
	require.NoError(t, err)
	assert.Equal(t, 50, dots.Bounds().Dx())
}

func TestQuoteRenderer_Render(t *testing.T) {
	dir := t.TempDir()
	writeArtwork(t, dir, "logo.png", 100, 25)

	r, err := NewQuoteRenderer(dir)
	require.NoError(t, err)
	r.compress = false

	q := completeQuote()
	q.Name = "ana maría"
	q.CfeInfo.TariffType = "DAC"
	q.Savings.EightYearsSaving = 33600

	pdf, err := r.Render(q)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Contains(t, string(pdf), "Proyecto TL-9")
	assert.Contains(t, string(pdf), "DAC")
	assert.Contains(t, string(pdf), "/Type /Page")
	assert.Contains(t, string(pdf), "TREINTA Y TRES MIL SEISCIENTOS PESOS")
}

func TestQuoteRenderer_RenderWithoutArtwork(t *testing.T) {
	r, err := NewQuoteRenderer(t.TempDir())
	require.NoError(t, err)

	pdf, err := r.Render(completeQuote())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("#99ca3c")
	assert.Equal(t, []int{0x99, 0xca, 0x3c}, []int{r, g, b})

	r, g, b = hexToRGB("nope")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestQuoteRenderer_RenderHugeSaving(t *testing.T) {
	r, err := NewQuoteRenderer(t.TempDir())
	require.NoError(t, err)
	r.compress = false

	q := completeQuote()
	q.Savings.EightYearsSaving = ToNumber("1e17", 0)

	var pdf []byte
	require.NotPanics(t, func() { pdf, err = r.Render(q) })

	require.NoError(t, err)
	assert.Contains(t, string(pdf), "BILL")
}

package illustration_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/illustration"
)

func decodeCard(t *testing.T, card domain.Illustration) []byte {
	t.Helper()
	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(card.URL, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(card.URL, prefix))
	require.NoError(t, err)
	return raw
}

func TestGenerator_OneCardPerKeyPoint(t *testing.T) {
	g := illustration.NewGenerator()

	cards := g.Generate([]string{"Attention scores every pair of words", "No recurrence is needed"}, domain.StylePastel)

	require.Len(t, cards, 2)
	for i, card := range cards {
		assert.Equal(t, "placeholder", card.Backend)
		assert.NotEmpty(t, card.KeyPoint)
		assert.Equal(t, card.KeyPoint, card.Description)

		img, err := png.Decode(bytes.NewReader(decodeCard(t, card)))
		require.NoError(t, err, "card %d", i)
		assert.Equal(t, 512, img.Bounds().Dx())
		assert.Equal(t, 512, img.Bounds().Dy())
	}
}

func TestGenerator_CapsAtMaxImages(t *testing.T) {
	g := illustration.NewGenerator()

	points := make([]string, illustration.MaxImages+3)
	for i := range points {
		points[i] = "a key point"
	}
	cards := g.Generate(points, domain.StyleColorful)

	assert.Len(t, cards, illustration.MaxImages)
}

func TestGenerator_Deterministic(t *testing.T) {
	g := illustration.NewGenerator()

	a := g.Generate([]string{"Caches keep hot data close to the reader"}, domain.StyleSimple)
	b := g.Generate([]string{"Caches keep hot data close to the reader"}, domain.StyleSimple)

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].URL, b[0].URL)
}

func TestGenerator_UnknownStyleStillRenders(t *testing.T) {
	g := illustration.NewGenerator()

	cards := g.Generate([]string{"point"}, domain.IllustrationStyle("sketchy"))

	require.Len(t, cards, 1)
	_, err := png.Decode(bytes.NewReader(decodeCard(t, cards[0])))
	assert.NoError(t, err)
}

func TestGenerator_EmptyInput(t *testing.T) {
	g := illustration.NewGenerator()

	assert.Empty(t, g.Generate(nil, domain.StylePastel))
	assert.Empty(t, g.Generate([]string{}, domain.StylePastel))
}

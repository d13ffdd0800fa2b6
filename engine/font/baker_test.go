package font

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func latinRequest() BakeRequest {
	return BakeRequest{
		Name:        "gotest",
		FontSize:    20,
		AtlasWidth:  512,
		AtlasHeight: 512,
		FirstChar:   32,
		NumChars:    96,
	}
}

func bakeWith(t *testing.T, request BakeRequest) *BakeResult {
	result, err := BakeData(goregular.TTF, request)
	require.NoError(t, err)
	return result
}

func bakeLatin(t *testing.T) *BakeResult {
	return bakeWith(t, latinRequest())
}

func TestBakeLatinRange(t *testing.T) {
	result := bakeLatin(t)
	desc := result.Descriptor

	// Go Regular covers all of printable ASCII, DEL may or may not map
	assert.GreaterOrEqual(t, len(desc.Chars), 95)
	assert.LessOrEqual(t, len(desc.Chars), 96)
	assert.Equal(t, "Go Regular", desc.Face)
	assert.Equal(t, 512, desc.ScaleW)
	assert.Equal(t, 512, desc.ScaleH)
	assert.Greater(t, desc.LineHeight, 0)
	assert.Greater(t, desc.Base, 0)

	space, ok := desc.Lookup(' ')
	require.True(t, ok)
	assert.Equal(t, 0, space.Width)
	assert.Equal(t, 0, space.Height)
	assert.Greater(t, space.XAdvance, 0)

	h, ok := desc.Lookup('H')
	require.True(t, ok)
	assert.Greater(t, h.Width, 0)
	assert.Greater(t, h.Height, 0)
}

func TestBakeIsDeterministic(t *testing.T) {
	first := bakeLatin(t)
	second := bakeLatin(t)

	assert.Equal(t, first.Descriptor, second.Descriptor)
	assert.True(t, bytes.Equal(first.Atlas.Pix, second.Atlas.Pix), "atlas pixels must be bit-for-bit identical")
}

func TestBakeAtlasTexelsAreBinary(t *testing.T) {
	result := bakeLatin(t)
	for i, value := range result.Atlas.Pix {
		if value != 0 && value != 0xFF {
			t.Fatalf("texel byte %d is %d, thresholding must leave only 0 and 255", i, value)
		}
	}
}

func TestBakeZeroChars(t *testing.T) {
	request := latinRequest()
	request.NumChars = 0

	result, err := BakeData(goregular.TTF, request)
	require.NoError(t, err)
	assert.Empty(t, result.Descriptor.Chars)
}

func TestBakeAtlasTooSmall(t *testing.T) {
	request := latinRequest()
	request.AtlasWidth = 8
	request.AtlasHeight = 8

	_, err := BakeData(goregular.TTF, request)
	require.Error(t, err)

	var overflow *PackingOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Less(t, overflow.Placed, overflow.Total)
}

func TestBakeSkipsMissingGlyphs(t *testing.T) {
	request := latinRequest()
	request.FirstChar = 0xE000 // private use area, not in Go Regular
	request.NumChars = 8

	result, err := BakeData(goregular.TTF, request)
	require.NoError(t, err)
	assert.Empty(t, result.Descriptor.Chars)
}

func TestBakeRejectsGarbageFontData(t *testing.T) {
	_, err := BakeData([]byte("this is not a font"), latinRequest())
	assert.True(t, errors.Is(err, ErrFontLoad))
}

func TestBakeMissingFontFile(t *testing.T) {
	request := latinRequest()
	request.FontPath = filepath.Join(t.TempDir(), "no_such_font.ttf")

	_, err := Bake(request)
	assert.True(t, errors.Is(err, ErrFontLoad))
}

func TestBakedDescriptorRoundTrips(t *testing.T) {
	result := bakeLatin(t)

	parsed, err := Parse(result.Descriptor.Serialize())
	require.NoError(t, err)
	assert.Equal(t, result.Descriptor, parsed)
}

func TestExportLoadRoundTrip(t *testing.T) {
	result := bakeLatin(t)
	base := filepath.Join(t.TempDir(), "sample")

	require.NoError(t, result.WriteFiles(base))
	require.FileExists(t, base+".json")
	require.FileExists(t, base+".tga")

	desc, atlas, err := LoadBaked(base)
	require.NoError(t, err)
	assert.Equal(t, result.Descriptor, desc)
	assert.Equal(t, result.Atlas.Bounds(), atlas.Bounds())
}

func TestLoadBakedNormalizesNames(t *testing.T) {
	result := bakeLatin(t)
	dir := t.TempDir()
	require.NoError(t, result.WriteFiles(filepath.Join(dir, "sample")))

	for _, name := range []string{"sample.json", "sample.tga", "SAMPLE", "Sample.JSON"} {
		desc, _, err := LoadBaked(filepath.Join(dir, name))
		require.NoError(t, err, "loading via %q", name)
		assert.Equal(t, result.Descriptor, desc)
	}
}

func TestLoadBakedMissingFiles(t *testing.T) {
	_, _, err := LoadBaked(filepath.Join(t.TempDir(), "nothing_here"))
	assert.True(t, errors.Is(err, ErrResourceLoad))
}

func TestLoadBakedMalformedDescriptor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{}"), 0644))

	_, _, err := LoadBaked(filepath.Join(dir, "bad"))
	assert.True(t, errors.Is(err, ErrMalformedDescriptor))
}

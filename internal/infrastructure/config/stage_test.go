package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridorLevel = `[header]
width=5
height=3

[layer]
data=
1,1,1,1,1
0,0,0,0,0
1,1,1,1,1
`

func TestParseLevel_Basic(t *testing.T) {
	lf, err := ParseLevel(strings.NewReader(corridorLevel))
	require.NoError(t, err)

	assert.Equal(t, 5, lf.Width)
	assert.Equal(t, 3, lf.Height)
	assert.Equal(t, [][]int{
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
	}, lf.Data)
	assert.Empty(t, lf.Objects)
}

func TestParseLevel_FlareExport(t *testing.T) {
	src := "[header]\r\n" +
		"width=3\r\n" +
		"height=2\r\n" +
		"tilewidth=16\r\n" +
		"orientation=orthogonal\r\n" +
		"\r\n" +
		"[tilesets]\r\n" +
		"tileset=arne_sprites.png,16,16,0,0\r\n" +
		"\r\n" +
		"[layer]\r\n" +
		"type=Tile Layer 1\r\n" +
		"data=\r\n" +
		"0,0,0,\r\n" +
		"2,7,101,\r\n" +
		"\r\n" +
		"[ObjectsLayer]\r\n" +
		"# Player\r\n" +
		"type=Player\r\n" +
		"location=1,0,1,1\r\n" +
		"\r\n" +
		"[ObjectsLayer]\r\n" +
		"type=Annoying\r\n" +
		"location=2,0,1,1\r\n" +
		"location=0,0,1,1\r\n"

	lf, err := ParseLevel(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 0, 0}, {2, 7, 101}}, lf.Data)
	assert.Equal(t, []ObjectConfig{
		{Type: "Player", X: 1, Y: 0},
		{Type: "Annoying", X: 2, Y: 0},
		{Type: "Annoying", X: 0, Y: 0},
	}, lf.Objects)
}

func TestParseLevel_LastLayerWins(t *testing.T) {
	src := corridorLevel + `
[layer]
data=
5,5,5,5,5
5,5,5,5,5
5,5,5,5,5
`
	lf, err := ParseLevel(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 5, lf.Data[1][2])
}

func TestParseLevel_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		reason string
	}{
		{
			name:   "no header",
			src:    "[layer]\ndata=\n1\n",
			reason: "[layer] before [header]",
		},
		{
			name:   "empty file",
			src:    "",
			reason: "missing [header]",
		},
		{
			name:   "missing height",
			src:    "[header]\nwidth=2\n\n",
			reason: "missing height",
		},
		{
			name:   "malformed width",
			src:    "[header]\nwidth=two\nheight=2\n\n",
			reason: "malformed width",
		},
		{
			name:   "zero width",
			src:    "[header]\nwidth=0\nheight=2\n\n",
			reason: "malformed width",
		},
		{
			name:   "too few rows",
			src:    "[header]\nwidth=2\nheight=3\n\n[layer]\ndata=\n1,1\n1,1\n",
			reason: "data has 2 rows, want 3",
		},
		{
			name:   "too many columns",
			src:    "[header]\nwidth=2\nheight=1\n\n[layer]\ndata=\n1,1,1\n",
			reason: "row 0 has 3 columns, want 2",
		},
		{
			name:   "too few columns",
			src:    "[header]\nwidth=3\nheight=1\n\n[layer]\ndata=\n1,1,\n",
			reason: "row 0 has 2 columns, want 3",
		},
		{
			name:   "non-integer cell",
			src:    "[header]\nwidth=2\nheight=1\n\n[layer]\ndata=\n1,x\n",
			reason: "invalid tile value",
		},
		{
			name:   "second header after a layer",
			src:    "[header]\nwidth=5\nheight=3\n\n[layer]\ndata=\n1,1,1,1,1\n0,0,0,0,0\n1,1,1,1,1\n\n[header]\nwidth=2\nheight=1\n\n",
			reason: "duplicate [header]",
		},
		{
			name:   "bad location",
			src:    "[header]\nwidth=1\nheight=1\n\n[ObjectsLayer]\ntype=Player\nlocation=3\n",
			reason: "malformed location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lf, err := ParseLevel(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Nil(t, lf, "no partial map on failure")
			assert.True(t, errors.Is(err, ErrMapParse))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Contains(t, perr.Reason, tt.reason)
		})
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Line: 7, Reason: "row 1 has 4 columns, want 5"}
	assert.Equal(t, "level: line 7: row 1 has 4 columns, want 5", err.Error())

	wrapped := &ParseError{Reason: "unreadable source", Err: errors.New("boom")}
	assert.Equal(t, "level: unreadable source: boom", wrapped.Error())
}

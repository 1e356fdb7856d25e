package mru_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/systmms/officemru/internal/mru"
	"github.com/systmms/officemru/tests/fakes"
)

func TestExtractPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "prefixed_value",
			raw:  `[F00000000][T01ED6D7E58D00000][O00000000]*C:\Users\a\Templates\Report.dotx`,
			want: `C:\Users\a\Templates\Report.dotx`,
		},
		{"bare_path", `C:\plain\path.dotx`, `C:\plain\path.dotx`},
		{"padded_after_star", `[F0]* C:\padded\path.potx `, `C:\padded\path.potx`},
		{"star_only", `[F0]*`, ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mru.ExtractPath(tt.raw))
		})
	}
}

func TestItems(t *testing.T) {
	t.Parallel()

	const mruPath = `HKCU\Software\Microsoft\Office\16.0\Word\Recent Templates\ADAL_x\File MRU`
	st := fakes.NewFakeStore().
		WithValue(mruPath, "Item 2", `[F0]*C:\t\second.dotx`).
		WithValue(mruPath, "Item Metadata 2", `<Metadata>...</Metadata>`).
		WithValue(mruPath, "Item 1", `[F0]*C:\t\first.dotx`).
		WithValue(mruPath, "Item bogus", `[F0]*C:\t\ignored.dotx`).
		WithValue(mruPath, "Unrelated", `something`).
		WithValue(mruPath, "Item 3", `[F0]*`)

	items := mru.Items(st, mruPath)
	require.Len(t, items, 2)
	assert.Equal(t, mru.Item{Index: 1, Path: `C:\t\first.dotx`}, items[0])
	assert.Equal(t, mru.Item{Index: 2, Path: `C:\t\second.dotx`}, items[1])
}

func TestItemsAbsentKey(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mru.Items(fakes.NewFakeStore(), `HKCU\nowhere`))
}

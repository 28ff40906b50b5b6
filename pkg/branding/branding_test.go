package branding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	require.NoError(t, DefaultPalette().Validate())

	b, err := New(Default(), DefaultPalette())
	require.NoError(t, err)
	assert.Equal(t, "FLYFOX AI", b.Info.Name)
	assert.Equal(t, "#FF6B35", b.Palette.Primary)
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a.Name = "changed"
	assert.Equal(t, "FLYFOX AI", Default().Name)
}

func TestInfo_Validate(t *testing.T) {
	valid := Info{Name: "Acme AI", Company: "Acme Corp", Mission: "Democratize AI", Contact: "hi@acme.com"}

	tests := []struct {
		name       string
		mutate     func(*Info)
		wantFields []string
	}{
		{"all set", func(*Info) {}, nil},
		{"empty name", func(i *Info) { i.Name = "" }, []string{"name"}},
		{"blank company", func(i *Info) { i.Company = "   " }, []string{"company"}},
		{"empty mission", func(i *Info) { i.Mission = "" }, []string{"mission"}},
		{"empty contact", func(i *Info) { i.Contact = "" }, []string{"contact"}},
		{"everything empty", func(i *Info) { *i = Info{} }, []string{"name", "company", "mission", "contact"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := valid
			tt.mutate(&info)

			err := info.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			fields := verr.Fields()
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Equal(t, "is required", fields[f], f)
			}
		})
	}
}

func TestPalette_Validate(t *testing.T) {
	tests := []struct {
		name    string
		palette Palette
		wantMsg string
	}{
		{"default", DefaultPalette(), ""},
		{"lower case hex", Palette{Primary: "#ff6b35", Secondary: "#2c3e50", Accent: "#e74c3c"}, ""},
		{"missing hash", Palette{Primary: "FF6B35", Secondary: "#2C3E50", Accent: "#E74C3C"}, "field 'primary' must be a #RRGGBB color"},
		{"short form", Palette{Primary: "#F63", Secondary: "#2C3E50", Accent: "#E74C3C"}, "field 'primary' must be a #RRGGBB color"},
		{"with alpha", Palette{Primary: "#FF6B35", Secondary: "#2C3E50FF", Accent: "#E74C3C"}, "field 'secondary' must be a #RRGGBB color"},
		{"not hex", Palette{Primary: "#FF6B35", Secondary: "#2C3E50", Accent: "#GGGGGG"}, "field 'accent' must be a #RRGGBB color"},
		{"empty accent", Palette{Primary: "#FF6B35", Secondary: "#2C3E50"}, "field 'accent' is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.palette.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestPalette_Colors(t *testing.T) {
	assert.Equal(t, map[string]string{
		"primary":   "#FF6B35",
		"secondary": "#2C3E50",
		"accent":    "#E74C3C",
	}, DefaultPalette().Colors())
}

func TestInfo_Glyph(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"FLYFOX AI", "F"},
		{"acme", "A"},
		{"  zeta", "Z"},
		{"émile", "É"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Info{Name: tt.name}.Glyph())
		})
	}
}

func TestNew_RejectsInvalidHalves(t *testing.T) {
	_, err := New(Info{}, DefaultPalette())
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = New(Default(), Palette{})
	assert.ErrorIs(t, err, ErrInvalid)
}

package output

import (
	"testing"

	"github.com/aretw0/docframe/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, f := range Formats() {
		got, err := Parse(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
		assert.NotEmpty(t, got.Extension())
		assert.NotEmpty(t, got.ContentType())
	}

	_, err := Parse("docx")
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "format", verr.Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		params  Params
		wantErr bool
	}{
		{"pdf without params", PDF, nil, false},
		{"pdf with empty params", PDF, Params{}, false},
		{"pdf rejects params", PDF, Params{"dpi": 300}, true},
		{"png without params", PNG, nil, false},
		{"png all params", PNG, Params{"width": 800, "height": 600, "dpi": 150}, false},
		{"png whole float from json", PNG, Params{"dpi": 300.0}, false},
		{"png zero dpi", PNG, Params{"dpi": 0}, true},
		{"png negative width", PNG, Params{"width": -1}, true},
		{"png string height", PNG, Params{"height": "600"}, true},
		{"png unknown key", PNG, Params{"quality": 90}, true},
		{"text rejects params", Text, Params{"width": 10}, true},
		{"unknown format", Format("docx"), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate(tt.params)
			if tt.wantErr {
				assert.True(t, schema.IsValidation(err), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPNGParams(t *testing.T) {
	assert.Empty(t, PNGParams{}.Params())

	p := PNGParams{Width: schema.Ptr(1024), DPI: schema.Ptr(72)}.Params()
	assert.Equal(t, Params{"width": 1024, "dpi": 72}, p)
	assert.NoError(t, PNG.Validate(p))
}

package style

import "github.com/aretw0/docframe/pkg/wire"

// Font names a typeface. The rendering engine resolves the name.
type Font struct {
	name string
}

// NewFont refers to a font by name. The engine resolves it.
func NewFont(name string) *Font {
	return &Font{name: name}
}

var helvetica = NewFont("helvetica")

// Helvetica is the standard font of the default paragraph format.
func Helvetica() *Font { return helvetica }

// Name returns the font name.
func (f *Font) Name() string { return f.name }

// ToWire converts the font to its wire form.
func (f *Font) ToWire() *wire.Font {
	if f == nil {
		return nil
	}
	return &wire.Font{Name: f.name}
}

package docframe

import "github.com/aretw0/docframe/pkg/content"

// Version is the library and CLI version.
const Version = "0.1.0"

// Encode wraps c in a document with the default layout and returns its wire form.
func Encode(c content.Content) ([]byte, error) {
	return content.NewDocument(c, nil).Marshal()
}

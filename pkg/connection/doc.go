/*
Package connection sends documents to a docframe rendering engine.

A conversion is one multipart POST to {url}/api/docframe?token={token} with
two parts: "meta", a JSON object holding the output format and its
parameters, and "proto-data", the encoded document tree. The engine answers
with the rendered bytes.

	c := connection.New("http://localhost:8080", connection.WithToken(token))
	res, err := c.ConvertToPDF(ctx, doc)
	if err != nil {
		return err
	}
	os.WriteFile("out.pdf", res.Data, 0o644)
*/
package connection

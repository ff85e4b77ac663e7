package connection

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/docframe/internal/renderstub"
	"github.com/aretw0/docframe/internal/testutils"
	"github.com/aretw0/docframe/pkg/content"
	"github.com/aretw0/docframe/pkg/observability"
	"github.com/aretw0/docframe/pkg/output"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c := New("")
	assert.Equal(t, "http://localhost:8080/api/docframe?token=", c.Endpoint())

	c = New("https://engine.example.com/", WithToken("a b&c"))
	assert.Equal(t, "https://engine.example.com/api/docframe?token=a+b%26c", c.Endpoint())
}

func TestConvert_Text(t *testing.T) {
	stub, srv := testutils.StartEngine(t, renderstub.WithToken("secret"))
	c := New(srv.URL, WithToken("secret"))

	res, err := c.Convert(context.Background(), content.NewDocument("Hello World", nil), output.Text, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", string(res.Data))
	assert.Equal(t, "text/plain", res.ContentType)

	reqs := stub.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, output.Text, reqs[0].Format)
	assert.Positive(t, reqs[0].Size)
}

func TestConvertToPDF(t *testing.T) {
	_, srv := testutils.StartEngine(t)
	res, err := New(srv.URL).ConvertToPDF(context.Background(), content.NewDocument("x", nil))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.Equal(t, "%PDF-", string(res.Data[:5]))
}

func TestConvert_PNGParams(t *testing.T) {
	stub, srv := testutils.StartEngine(t)
	params := output.PNGParams{Width: schema.Ptr(800), DPI: schema.Ptr(150)}.Params()

	_, err := New(srv.URL).Convert(context.Background(), content.NewDocument("x", nil), output.PNG, params)
	require.NoError(t, err)

	got := stub.Requests()[0].Params
	assert.Equal(t, map[string]any{"width": 800.0, "dpi": 150.0}, got)
}

func TestConvert_InvalidParamsSendNothing(t *testing.T) {
	stub, srv := testutils.StartEngine(t)
	_, err := New(srv.URL).Convert(context.Background(), content.NewDocument("x", nil), output.PDF, output.Params{"dpi": 300})
	assert.True(t, schema.IsValidation(err))
	assert.Empty(t, stub.Requests())
}

func TestConvert_InvalidDocumentSendsNothing(t *testing.T) {
	stub, srv := testutils.StartEngine(t)
	doc := content.NewDocument(content.NewRule(content.RuleProperties{Style: "wavy"}), nil)
	_, err := New(srv.URL).ConvertToPDF(context.Background(), doc)
	assert.True(t, schema.IsValidation(err))
	assert.Empty(t, stub.Requests())
}

func TestConvert_Multipart(t *testing.T) {
	var meta, data []byte
	var metaType, dataType, metaFile, dataFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ps, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mr := multipart.NewReader(r.Body, ps["boundary"])
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			body, _ := io.ReadAll(p)
			switch p.FormName() {
			case "meta":
				meta, metaType, metaFile = body, p.Header.Get("Content-Type"), p.FileName()
			case "proto-data":
				data, dataType, dataFile = body, p.Header.Get("Content-Type"), p.FileName()
			}
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	doc := content.NewDocument("Hello World", nil)
	_, err := New(srv.URL).Convert(context.Background(), doc, output.PNG, output.Params{"dpi": 300})
	require.NoError(t, err)

	assert.JSONEq(t, `{"format":"png","dpi":300}`, string(meta))
	assert.Equal(t, "application/json", metaType)
	assert.Equal(t, "meta", metaFile)
	assert.Equal(t, "application/protobuf", dataType)
	assert.Equal(t, "data.proto", dataFile)

	want, err := doc.Marshal()
	require.NoError(t, err)
	assert.Equal(t, want, data)

	outline, err := wire.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", outline.PlainText())
}

func TestConvert_StatusError(t *testing.T) {
	_, srv := testutils.StartEngine(t, renderstub.WithToken("secret"))
	_, err := New(srv.URL, WithToken("wrong")).ConvertToPDF(context.Background(), content.NewDocument("x", nil))

	require.ErrorIs(t, err, ErrUnexpectedStatus)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusUnauthorized, serr.Code)
	assert.Equal(t, "invalid token", serr.Body)
}

func TestConvert_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ConvertToPDF(context.Background(), content.NewDocument("x", nil))
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestConvert_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := New(srv.URL, WithMetrics(m)).ConvertToPDF(ctx, content.NewDocument("x", nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests().WithLabelValues("pdf", "error")))
}

func TestConvert_Metrics(t *testing.T) {
	_, srv := testutils.StartEngine(t)
	m := observability.NewMetrics(prometheus.NewRegistry())
	c := New(srv.URL, WithMetrics(m), WithHTTPClient(srv.Client()))

	for i := 0; i < 3; i++ {
		_, err := c.Convert(context.Background(), content.NewDocument("x", nil), output.HTML, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Requests().WithLabelValues("html", "200")))
}

package middleware

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxRequestBody caps decoded request bodies. Donation forms and JSON
// payloads stay far below it.
const MaxRequestBody int64 = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

// DecompressRequest inflates gzip encoded bodies and bounds every body read
// to MaxRequestBody bytes after decoding.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		if !isGzipEncoded(c.GetHeader("Content-Encoding")) {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBody)
			c.Next()
			return
		}

		raw := c.Request.Body
		reader, err := gzip.NewReader(raw)
		if err != nil {
			_ = raw.Close()
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Malformed gzip body"})
			return
		}

		c.Request.Body = &inflatedBody{reader: reader, raw: raw, remaining: MaxRequestBody}
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}

func isGzipEncoded(header string) bool {
	for _, token := range strings.Split(header, ",") {
		if strings.EqualFold(strings.TrimSpace(token), "gzip") {
			return true
		}
	}
	return false
}

type inflatedBody struct {
	reader    *gzip.Reader
	raw       io.ReadCloser
	remaining int64
}

func (b *inflatedBody) Read(p []byte) (int, error) {
	if b.remaining <= 0 {
		var probe [1]byte
		if n, err := b.reader.Read(probe[:]); n == 0 && errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, errBodyTooLarge
	}
	if int64(len(p)) > b.remaining {
		p = p[:b.remaining]
	}
	n, err := b.reader.Read(p)
	b.remaining -= int64(n)
	return n, err
}

func (b *inflatedBody) Close() error {
	return errors.Join(b.reader.Close(), b.raw.Close())
}

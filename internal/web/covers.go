package web

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration

	"github.com/JonMunkholm/vinyl/internal/logging"
)

const coverCacheControl = "public, max-age=3600"

// handleCoverFile serves a cover from the local store. The requested
// extension is only a hint: the identifier is looked up with the preferred
// extension and then the fallbacks. ?w=N returns a JPEG thumbnail N pixels
// wide. A missing cover is a plain 404 so the browser shows its
// broken-image placeholder.
func (s *Server) handleCoverFile(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	id := strings.TrimSuffix(file, path.Ext(file))

	p, ok := s.covers.Locate(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", coverCacheControl)

	width, err := strconv.Atoi(r.URL.Query().Get("w"))
	if err != nil || width <= 0 {
		http.ServeFile(w, r, p)
		return
	}
	width = min(width, s.cfg.Covers.MaxThumbWidth)

	data, err := thumbnail(p, width)
	if err != nil {
		logging.FromContext(r.Context()).Warn("cover thumbnail failed, serving original",
			"cover", id,
			"error", err,
		)
		http.ServeFile(w, r, p)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	http.ServeContent(w, r, id+".jpg", modTime(p), bytes.NewReader(data))
}

// thumbnail decodes the image at p and scales it to width, keeping the
// aspect ratio, then encodes it as JPEG. Images are never scaled up.
func thumbnail(p string, width int) ([]byte, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path.Base(p), err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", path.Base(p))
	}
	if width > b.Dx() {
		width = b.Dx()
	}
	height := max(1, b.Dy()*width/b.Dx())

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

func modTime(p string) time.Time {
	info, err := os.Stat(p)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/imprint/internal/image"
)

// WarningHeader carries non-fatal composition warnings, one value each.
const WarningHeader = "X-Imprint-Warning"

const maxUploadBytes = 20 << 20

// Handler serves posters rendered by Composer.
type Handler struct {
	Composer       *imagepkg.Composer
	FilenamePrefix string
	Logger         *log.Logger
}

// posterForm mirrors the editor controls. Ranges are checked here so the
// composer can trust its input.
type posterForm struct {
	Name         string  `form:"name" binding:"required"`
	Role         string  `form:"role"`
	PhotoURL     string  `form:"photo_url" binding:"omitempty,url,startswith=http"`
	Scale        float64 `form:"scale,default=1" binding:"gte=0.5,lte=4"`
	OffsetX      int     `form:"offset_x" binding:"gte=-400,lte=400"`
	OffsetY      int     `form:"offset_y" binding:"gte=-400,lte=400"`
	Rotation     int     `form:"rotation" binding:"gte=0,lte=360"`
	NameFontSize int     `form:"name_font_size,default=60" binding:"gte=20,lte=150"`
	RoleFontSize int     `form:"role_font_size,default=40" binding:"gte=15,lte=100"`
}

func (f posterForm) layout() imagepkg.Layout {
	return imagepkg.Layout{
		Scale:        f.Scale,
		OffsetX:      f.OffsetX,
		OffsetY:      f.OffsetY,
		Rotation:     f.Rotation,
		NameFontSize: f.NameFontSize,
		RoleFontSize: f.RoleFontSize,
	}
}

func (h *Handler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// template returns the bare poster so the editor can show it before upload.
func (h *Handler) template(c *gin.Context) {
	img, err := imagepkg.LoadTemplate(h.Composer.TemplatePath)
	if err != nil {
		h.logger().Error("template", "err", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "The poster template image was not found."})
		return
	}
	b, err := imagepkg.EncodePNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// poster renders a poster from a multipart form and returns it as a download.
func (h *Handler) poster(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	var form posterForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, err := h.openPhoto(c, form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer photo.Close()

	res, err := h.Composer.Compose(photo, imagepkg.TextFields{Name: form.Name, Role: form.Role}, form.layout())
	switch {
	case errors.Is(err, imagepkg.ErrTemplateNotFound):
		h.logger().Error("compose", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "The poster template image was not found."})
		return
	case errors.Is(err, imagepkg.ErrPhotoDecode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The uploaded photo could not be read as an image."})
		return
	case err != nil:
		h.logger().Error("compose", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	b, err := imagepkg.EncodePNG(res.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, w := range res.Warnings {
		c.Writer.Header().Add(WarningHeader, w.Error())
	}
	name := imagepkg.Filename(h.FilenamePrefix, form.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	h.logger().Info("poster rendered", "file", name, "bytes", len(b))
	c.Data(http.StatusOK, "image/png", b)
}

// openPhoto prefers the uploaded file and falls back to photo_url.
func (h *Handler) openPhoto(c *gin.Context, form posterForm) (io.ReadCloser, error) {
	fh, err := c.FormFile("photo")
	if err == nil {
		return fh.Open()
	}
	if form.PhotoURL == "" {
		return nil, errors.New("upload a photo or provide photo_url")
	}
	r, err := imagepkg.FetchPhoto(form.PhotoURL)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(r), nil
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if sizeStr := c.Query("size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v < 21 || v > 2048 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 21 and 2048"})
			return
		}
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

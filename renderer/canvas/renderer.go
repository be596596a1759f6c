package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"rsc.io/qr"

	"github.com/ByLCY/cryptogram/fonts"
	"github.com/ByLCY/cryptogram/layout"
	"github.com/ByLCY/cryptogram/renderer"
	"github.com/ByLCY/cryptogram/style"
)

// defaultLineWidth 是未指定线宽时的描边宽度（英寸）。
const defaultLineWidth = 0.010

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	fontMu       sync.Mutex
	fontFamilies map[string]*fontFamilyEntry
}

var (
	_ renderer.Renderer     = (*Renderer)(nil)
	_ renderer.PageRenderer = (*Renderer)(nil)
)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// NewRenderer creates a canvas-based renderer backed by the built-in fonts.
func NewRenderer() *Renderer {
	return &Renderer{fontFamilies: map[string]*fontFamilyEntry{}}
}

// Render 将所有纸面按打印顺序写入同一个 PDF。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	r.applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c, err := r.drawCanvas(page)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", page.Name, err)
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage 将单个纸面输出为 SVG。
func (r *Renderer) RenderPage(page layout.Page) ([]byte, error) {
	c, err := r.drawCanvas(page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", page.Name, err)
	}
	var buf bytes.Buffer
	writer := svg.New(&buf, toMm(page.Width), toMm(page.Height), nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 SVG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, "", meta.Creator)
}

func (r *Renderer) drawCanvas(page layout.Page) (*canvas.Canvas, error) {
	c := canvas.New(toMm(page.Width), toMm(page.Height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与排版保持左上角为原点

	r.drawLines(ctx, page.Lines)
	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return nil, err
		}
	}
	if err := r.drawCodes(ctx, page.Codes); err != nil {
		return nil, err
	}
	return c, nil
}

// drawTextBox 以 (X, Y) 为基线起点绘制单行文本；Rotate 非零时绕该点旋转。
func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	if tb.Content == "" {
		return nil
	}
	st, err := style.Cached(tb.Style)
	if err != nil {
		return err
	}
	fill := layout.Color{}
	if st.Fill != nil {
		fill = *st.Fill
	}
	face, err := r.fontFace(st, fill)
	if err != nil {
		return err
	}

	textAlign := canvas.Left
	if strings.EqualFold(tb.Align, "center") || strings.EqualFold(tb.Align, "middle") {
		textAlign = canvas.Center
	}
	line := canvas.NewTextLine(face, tb.Content, textAlign)

	baseline := 0.0
	if tb.Central {
		m := face.Metrics()
		baseline = (m.Ascent - m.Descent) / 2
	}
	if tb.Rotate == 0 {
		ctx.DrawText(toMm(tb.X), toMm(tb.Y)+baseline, line)
		return nil
	}
	ctx.Push()
	ctx.ComposeView(canvas.Identity.Translate(toMm(tb.X), toMm(tb.Y)).Rotate(tb.Rotate))
	ctx.DrawText(0, baseline, line)
	ctx.Pop()
	return nil
}

// drawLines 绘制引导线（英寸转毫米）。
func (r *Renderer) drawLines(ctx *canvas.Context, lines []layout.Line) {
	for _, ln := range lines {
		w := ln.Width
		if w <= 0 {
			w = defaultLineWidth
		}
		ctx.SetStrokeColor(colorFromLayout(ln.Color))
		ctx.SetStrokeWidth(toMm(w))
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(ln.X2-ln.X1), toMm(ln.Y2-ln.Y1))
		ctx.DrawPath(toMm(ln.X1), toMm(ln.Y1), p)
	}
}

// drawCodes 绘制二维码，边长为 Size 英寸。
func (r *Renderer) drawCodes(ctx *canvas.Context, codes []layout.CodeBox) error {
	for _, cb := range codes {
		code, err := qr.Encode(cb.Content, qr.M)
		if err != nil {
			return fmt.Errorf("生成二维码失败: %w", err)
		}
		img := code.Image()
		size := toMm(cb.Size)
		if size <= 0 || img.Bounds().Dx() == 0 {
			continue
		}
		dpmm := float64(img.Bounds().Dx()) / size
		ctx.DrawImage(toMm(cb.X), toMm(cb.Y), img, canvas.DPMM(dpmm))
	}
	return nil
}

func (r *Renderer) fontFace(st style.Style, col layout.Color) (*canvas.FontFace, error) {
	family, fontStyle, err := r.ensureFontFamily(st)
	if err != nil {
		return nil, err
	}
	return family.Face(st.FontSize.ToPT(), colorFromLayout(col), fontStyle, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(st style.Style) (*canvas.FontFamily, canvas.FontStyle, error) {
	name := fonts.Resolve(st.FontFamily...)
	bold := st.FontWeight == "bold"
	italic := st.FontStyle == "italic" || st.FontStyle == "oblique"
	key := fmt.Sprintf("%s|%t|%t", name, bold, italic)

	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if entry, ok := r.fontFamilies[key]; ok {
		return entry.family, entry.style, nil
	}

	fontStyle := canvas.FontRegular
	if bold {
		fontStyle = canvas.FontBold
	}
	if italic {
		fontStyle |= canvas.FontItalic
	}
	data, err := fonts.Load(name, bold, italic)
	if err != nil {
		return nil, canvas.FontRegular, err
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, fontStyle); err != nil {
		return nil, canvas.FontRegular, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	r.fontFamilies[key] = &fontFamilyEntry{family: family, style: fontStyle}
	return family, fontStyle, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将英寸转换为毫米。
func toMm(in float64) float64 { return layout.InchesToMM(in) }

package renderer

import "github.com/ByLCY/cryptogram/layout"

// Renderer 将整本小册子的排版结果输出为单个文件（例如 PDF）。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}

// PageRenderer 将一张纸的一面单独输出（例如 SVG），文件名取 Page.Name。
type PageRenderer interface {
	RenderPage(page layout.Page) ([]byte, error)
}

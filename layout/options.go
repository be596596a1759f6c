package layout

// BuildOptions 配置一次小册子排版。
type BuildOptions struct {
	Kind      Kind
	Name      string // 输出文件前缀，通常为引文文件名
	Title     string
	Labels    Labels
	AnswerURL string // 非空时在封底放置指向答案页的二维码
}

// Labels 是非引文页上显示的文字，支持 ${title}、${quotes}、${pages}、${sheets} 等占位符。
type Labels struct {
	Front  string
	Back   string
	Answer string
	Blank  string
}

// DefaultLabels 返回默认的页面文字。
func DefaultLabels() Labels {
	return Labels{
		Front:  "Title Page",
		Back:   "Back Matter",
		Answer: "Answer key",
	}
}

// qrSize 是封底二维码的边长（英寸）。
const qrSize = 1.5

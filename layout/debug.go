package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EncodeDebugJSON 将排版结果以缩进 JSON 写入 w，便于核对拼版顺序。
func EncodeDebugJSON(w io.Writer, res *Result) error {
	if res == nil {
		return fmt.Errorf("排版结果为空")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteDebugJSON 将排版结果写入 path。
func WriteDebugJSON(res *Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeDebugJSON(file, res); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

package keywords

import (
	"encoding/csv"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Load 读取关键词文件（CSV，每行第一列为一个搜索词）
// 关键词文件由用户手工维护，词条可能经过 URL 编码，这里统一解码
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keywords file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // 允许每行列数不同

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read keywords file: %w", err)
	}

	var kws []string
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		kw := strings.TrimSpace(record[0])
		if kw == "" {
			continue
		}
		// 仅做百分号解码，加号原样保留（如 C++）；解码失败时保留原词
		if decoded, err := url.PathUnescape(kw); err == nil {
			kw = decoded
		}
		kws = append(kws, kw)
	}

	return kws, nil
}

package article

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// DecodeJSON 从 JSON 数组读取文章列表，并补齐缺失的 ID
func DecodeJSON(r io.Reader) ([]Record, error) {
	var list []Record
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	for i := range list {
		list[i] = list[i].WithID()
	}
	return list, nil
}

// LoadFile 读取本地 JSON 文件
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeJSON(f)
}

// WithID 若 ID 为空，则以 URL（或 公众号+标题）的 sha1 作为 ID，返回新值
func (r Record) WithID() Record {
	if strings.TrimSpace(r.ID) != "" {
		return r
	}
	key := strings.TrimSpace(r.URL)
	if key == "" {
		key = r.AccountName() + "\x00" + strings.TrimSpace(r.Title)
	}
	r.ID = hashKey(key)
	return r
}

func hashKey(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

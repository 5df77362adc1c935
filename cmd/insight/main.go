// insight 命令行：对 JSON 文件中的文章做离线打分与批量分析，无需数据库
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
